// Package ioflows loads import flow definitions, merging user overrides
// from flows.yaml on top of the builtin flows.
package ioflows

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/onestep/osimport/pkg/flows"
	"gopkg.in/yaml.v3"
)

// flowsFile is the shape of flows.yaml.
type flowsFile struct {
	Flows []flows.Flow `yaml:"flows"`
}

// Load returns the flows osimport knows about. When path points to an
// existing flows.yaml its entries override the builtin flow with the
// same name; entries with new names define new flows. A missing file is
// not an error.
func Load(path string) (map[string]flows.Flow, error) {
	res := flows.Builtin()

	bs, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return nil, fileError(path, err)
	}

	var ff flowsFile
	err = yaml.Unmarshal(bs, &ff)
	if err != nil {
		return nil, fileError(path, err)
	}

	for _, f := range ff.Flows {
		err = f.Validate()
		if err != nil {
			return nil, invalidFlowError(path, err)
		}
		res[f.Name] = f
	}

	return res, nil
}

// Get loads the flows and picks one by name.
func Get(path, name string) (flows.Flow, error) {
	all, err := Load(path)
	if err != nil {
		return flows.Flow{}, err
	}

	f, ok := all[name]
	if !ok {
		names := make([]string, 0, len(all))
		for n := range all {
			names = append(names, n)
		}
		sort.Strings(names)
		return flows.Flow{}, unknownFlowError(name, names)
	}
	return f, nil
}
