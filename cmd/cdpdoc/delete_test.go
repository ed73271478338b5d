package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cdpdoc/cdpdoc"
	main "github.com/cdpdoc/cdpdoc/cmd/cdpdoc"
	"github.com/cdpdoc/cdpdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("refuses to delete without --force", func(t *testing.T) {
		t.Parallel()

		cdps := &mock.CDPService{
			DeleteCDPFn: func(_ context.Context, _ string) error {
				t.Error("DeleteCDP should not be called without --force")
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			CDPs:   cdps,
		}

		cmd := &main.DeleteCmd{ID: "segment"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "use --force to confirm deletion")
	})

	t.Run("deletes with --force and confirms it", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		cdps := &mock.CDPService{
			DeleteCDPFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			CDPs:   cdps,
		}

		cmd := &main.DeleteCmd{ID: "zeotap", Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "zeotap", deletedID)
		assert.Contains(t, stdout.String(), `Deleted CDP "zeotap" and its documents`)
	})

	t.Run("reports an unknown CDP", func(t *testing.T) {
		t.Parallel()

		cdps := &mock.CDPService{
			DeleteCDPFn: func(_ context.Context, id string) error {
				return cdpdoc.Errorf(cdpdoc.ENOTFOUND, "CDP %q not found", id)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			CDPs:   cdps,
		}

		cmd := &main.DeleteCmd{ID: "nope", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, cdpdoc.ENOTFOUND, cdpdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `CDP "nope" not found`)
	})
}
