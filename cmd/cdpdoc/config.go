package main

import (
	"fmt"
	"os"

	"github.com/cdpdoc/cdpdoc"
	"gopkg.in/yaml.v3"
)

// LoadParams reads tuning parameters from a YAML file. An empty path means
// shipped defaults; fields the file omits keep their defaults.
func LoadParams(path string) (cdpdoc.Params, error) {
	if path == "" {
		return cdpdoc.DefaultParams(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cdpdoc.Params{}, fmt.Errorf("read config: %w", err)
	}

	var params cdpdoc.Params
	if err := yaml.Unmarshal(data, &params); err != nil {
		return cdpdoc.Params{}, cdpdoc.Errorf(cdpdoc.EINVALID, "config %q is not valid YAML", path)
	}

	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return cdpdoc.Params{}, err
	}
	return params, nil
}
