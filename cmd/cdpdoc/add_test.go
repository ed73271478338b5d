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

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("registers a CDP and confirms it", func(t *testing.T) {
		t.Parallel()

		var created *cdpdoc.CDP
		cdps := &mock.CDPService{
			CreateCDPFn: func(_ context.Context, cdp *cdpdoc.CDP) error {
				created = cdp
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

		cmd := &main.AddCmd{
			ID:      "rudderstack",
			Name:    "RudderStack",
			BaseURL: "https://www.rudderstack.com/docs/",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "rudderstack", created.ID)
		assert.Equal(t, "RudderStack", created.Name)
		assert.Equal(t, "https://www.rudderstack.com/docs/", created.BaseURL)
		assert.Contains(t, stdout.String(), `Registered CDP "RudderStack" (rudderstack)`)
	})

	t.Run("reports a duplicate ID without stack noise", func(t *testing.T) {
		t.Parallel()

		cdps := &mock.CDPService{
			CreateCDPFn: func(_ context.Context, _ *cdpdoc.CDP) error {
				return cdpdoc.Errorf(cdpdoc.ECONFLICT, "CDP %q already registered", "segment")
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

		cmd := &main.AddCmd{ID: "segment", Name: "Segment", BaseURL: "https://segment.com/docs/"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, cdpdoc.ECONFLICT, cdpdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `error: CDP "segment" already registered`)
		assert.Empty(t, stdout.String())
	})
}
