package api_test

import (
	"os"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-dashboard/backend/api"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// document is the part of openapi.yaml the checks below need.
type document struct {
	Paths map[string]map[string]struct {
		OperationID string `yaml:"operationId"`
	} `yaml:"paths"`
}

// Every operation in the embedded document must have a strict handler
// method, or the generated code is stale.
func TestOpenAPI_OperationsAreGenerated(t *testing.T) {
	var doc document
	require.NoError(t, yaml.Unmarshal(api.OpenAPI, &doc))

	iface := reflect.TypeOf((*gen.StrictServerInterface)(nil)).Elem()
	var ops []string
	for path, methods := range doc.Paths {
		for method, op := range methods {
			require.NotEmpty(t, op.OperationID, "%s %s has no operationId", method, path)
			ops = append(ops, op.OperationID)
			name := strings.ToUpper(op.OperationID[:1]) + op.OperationID[1:]
			_, ok := iface.MethodByName(name)
			assert.True(t, ok, "gen.StrictServerInterface has no %s; run go generate ./api", name)
		}
	}
	assert.Len(t, ops, iface.NumMethod(), "operations and generated methods differ")
}

// The header of the generated file names the generator version; it must be
// the one go:generate pins.
func TestOpenAPI_GeneratorVersionPinned(t *testing.T) {
	src, err := os.ReadFile("api.go")
	require.NoError(t, err)
	generated, err := os.ReadFile("../internal/handler/gen/api.gen.go")
	require.NoError(t, err)

	pin := regexp.MustCompile(`oapi-codegen@(v[0-9.]+)`).FindSubmatch(src)
	require.NotNil(t, pin, "api.go has no pinned go:generate directive")
	header := regexp.MustCompile(`oapi-codegen/v2 version (v[0-9.]+) DO NOT EDIT`).FindSubmatch(generated)
	require.NotNil(t, header, "api.gen.go has no generator header")

	assert.Equal(t, string(pin[1]), string(header[1]))
}
