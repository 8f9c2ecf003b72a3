package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bytedance/sonic"
	"github.com/m-mizutani/goerr/v2"
)

// layout is the persisted canvas: one settings bag per slot.
type layout struct {
	FormID string              `json:"form_id"`
	Slots  []map[string]string `json:"slots"`
}

func readLayout(path string) (*layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read layout", goerr.V("path", path))
	}
	var l layout
	if err := sonic.ConfigStd.Unmarshal(data, &l); err != nil {
		return nil, goerr.Wrap(err, "failed to decode layout", goerr.V("path", path))
	}
	return &l, nil
}

func writeLayout(path string, l layout) error {
	data, err := sonic.ConfigStd.MarshalIndent(l, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode layout")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write layout", goerr.V("path", path))
	}
	return nil
}
