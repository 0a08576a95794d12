package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssessor struct {
	got types.Coords
}

func (s *stubAssessor) Assess(_ context.Context, coords types.Coords) (*types.Prediction, error) {
	s.got = coords
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	return &types.Prediction{
		GeographicData: types.GeographicProfile{Terrain: types.TerrainPlain, SeismicZone: 4},
		LocationInfo:   types.UnknownLocation(),
		AnalysisSource: types.AnalysisSourceRuleBased,
	}, nil
}

func parseCLI(t *testing.T, args ...string) CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("assess"))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestCLI_Parse(t *testing.T) {
	cli := parseCLI(t, "--latitude", "19.076", "--longitude", "72.8777", "--pretty")

	assert.Equal(t, 19.076, cli.Latitude)
	assert.Equal(t, 72.8777, cli.Longitude)
	assert.True(t, cli.Pretty)
}

func TestCLI_RequiresCoordinates(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("assess"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--latitude", "19.076"})
	assert.Error(t, err)
}

func TestCLI_Assess(t *testing.T) {
	cli := parseCLI(t, "--latitude", "28.6139", "--longitude", "77.209")
	stub := &stubAssessor{}
	var out bytes.Buffer

	require.NoError(t, cli.assess(context.Background(), stub, &out))

	assert.Equal(t, types.Coords{Latitude: 28.6139, Longitude: 77.209}, stub.got)
	assert.Equal(t, 1, strings.Count(out.String(), "\n"), "compact output is one line")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Contains(t, body, "geographic_data")
	assert.Contains(t, body, "location_info")
	assert.Contains(t, body, "analysis")
}

func TestCLI_AssessPretty(t *testing.T) {
	cli := parseCLI(t, "--latitude", "28.6139", "--longitude", "77.209", "--pretty")
	var out bytes.Buffer

	require.NoError(t, cli.assess(context.Background(), &stubAssessor{}, &out))

	assert.Contains(t, out.String(), "\n  \"geographic_data\": {")
}

func TestCLI_AssessOutOfBounds(t *testing.T) {
	cli := parseCLI(t, "--latitude", "40.7", "--longitude", "74")
	var out bytes.Buffer

	err := cli.assess(context.Background(), &stubAssessor{}, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrOutOfBounds))
	assert.Empty(t, out.String())
}
