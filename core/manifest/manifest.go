package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/pathrouter/core/router"
)

// Manifest is the document layout of a routes file.
type Manifest struct {
	Routes []Record `yaml:"routes"`
}

// Record describes one route. Handler and DataHandler are registry names.
type Record struct {
	Path        string   `yaml:"path"`
	Methods     []string `yaml:"methods"`
	Handler     string   `yaml:"handler"`
	DataHandler string   `yaml:"data_handler,omitempty"`
	SSLOnly     bool     `yaml:"ssl_only,omitempty"`
}

// Load reads a routes file and resolves it against reg.
func Load[H, D any](path string, reg *Registry[H, D]) (*router.Routes[H, D], error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return nil, errors.Join(ErrManifestUnreachable, err)
	}
	return Parse(data, reg)
}

// LoadReader is Load for an already opened manifest.
func LoadReader[H, D any](r io.Reader, reg *Registry[H, D]) (*router.Routes[H, D], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrManifestUnreachable, err)
	}
	return Parse(data, reg)
}

// Parse decodes a YAML manifest, expands environment references and
// resolves every record against reg. The returned table keeps document order.
//
// Records are checked in full before anything is returned: a missing path,
// an unknown handler name, no methods or an unparsable path all fail the
// whole manifest with a *RecordError.
func Parse[H, D any](data []byte, reg *Registry[H, D]) (*router.Routes[H, D], error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	content := expandEnv(string(data), os.LookupEnv)

	dec := yaml.NewDecoder(bytes.NewReader([]byte(content)))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	routes := router.NewRoutes[H, D]()
	for i, rec := range m.Routes {
		route, err := resolve(rec, reg)
		if err != nil {
			return nil, &RecordError{Index: i, Path: rec.Path, Err: err}
		}
		routes.Add(route)
	}
	return routes, nil
}

func resolve[H, D any](rec Record, reg *Registry[H, D]) (router.Route[H, D], error) {
	var route router.Route[H, D]

	if rec.Path == "" {
		return route, ErrMissingPath
	}
	if len(rec.Methods) == 0 {
		return route, router.ErrNoMethods
	}
	if _, err := router.ParsePath(rec.Path); err != nil {
		return route, err
	}
	if rec.Handler == "" {
		return route, ErrMissingHandler
	}

	h, ok := reg.handler(rec.Handler)
	if !ok {
		return route, fmt.Errorf("%w: %q", ErrUnknownHandler, rec.Handler)
	}

	route = router.Route[H, D]{
		Path:    rec.Path,
		Methods: rec.Methods,
		Handler: h,
		SSLOnly: rec.SSLOnly,
	}

	if rec.DataHandler != "" {
		d, ok := reg.dataHandler(rec.DataHandler)
		if !ok {
			return router.Route[H, D]{}, fmt.Errorf("%w: %q", ErrUnknownDataHandler, rec.DataHandler)
		}
		route.DataHandler = d
	}

	return route, nil
}
