package datapackage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrepo/mdrmeta/internal/metadata"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MDR_00000002", "mdr_00000002"},
		{"trajectory.xtc", "trajectory.xtc"},
		{"My Trajectory (final).xtc", "my-trajectory-final-.xtc"},
		{"  GROMACS  ", "gromacs"},
		{"***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug(tt.in))
		})
	}
}

func TestBuild_ExampleRecord(t *testing.T) {
	rec := metadata.ExampleV1()
	id := metadata.RecordID(rec, "example.toml")

	pkg, err := Build(rec, id)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"trajectory.xtc", "structure.pdb", "topology.psf", "abc.cpt", "xyz.tpr"},
		pkg.ResourceNames())

	desc := pkg.Descriptor()
	assert.Equal(t, "mdrepo-"+id.String(), desc["name"])
	assert.Equal(t, id.String(), desc["id"])
	assert.Equal(t, "2000-01-01T00:00:00Z", desc["created"])
	assert.Equal(t, "Adaptive sampling of AncFT luciferase", desc["title"])
}

func TestBuild_NamedByRepositoryID(t *testing.T) {
	rec := metadata.ExampleV1()
	id := "MDR_00000002"
	rec.MdrepoID = &id

	pkg, err := Build(rec, metadata.RecordID(rec, ""))
	require.NoError(t, err)
	assert.Equal(t, "mdr_00000002", pkg.Descriptor()["name"])
}

func TestMarshal_ResourceProperties(t *testing.T) {
	pkg, err := Build(metadata.ExampleV1(), uuid.New())
	require.NoError(t, err)

	data, err := Marshal(pkg)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var decoded struct {
		Keywords  []string         `json:"keywords"`
		Resources []map[string]any `json:"resources"`
		Contribs  []map[string]any `json:"contributors"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []string{"mdrepo", "molecular-dynamics", "gromacs"}, decoded.Keywords)
	require.Len(t, decoded.Resources, 5)

	trajectory := decoded.Resources[0]
	assert.Equal(t, "trajectory.xtc", trajectory["path"])
	assert.Equal(t, RoleTrajectory, trajectory[RoleProperty])
	assert.Equal(t, "xtc", trajectory["format"])

	checkpoint := decoded.Resources[3]
	assert.Equal(t, RoleAdditional, checkpoint[RoleProperty])
	assert.Equal(t, "Checkpoint", checkpoint[FileTypeProperty])
	assert.Equal(t, "Last GROMACS checkpoint of the simulation", checkpoint["description"])

	require.Len(t, decoded.Contribs, 2)
	assert.Equal(t, "Contributor1", decoded.Contribs[0]["title"])
	assert.Equal(t, "Institution", decoded.Contribs[0]["organization"])
	assert.Equal(t, "email@place.edu", decoded.Contribs[0]["email"])
	assert.Equal(t, "https://orcid.org/0000-0000-0000-000X", decoded.Contribs[0]["path"])
}

func TestBuild_DuplicateFileNames(t *testing.T) {
	rec := metadata.ExampleV1()
	rec.AdditionalFiles = []metadata.AdditionalFileV1{
		{AdditionalFileType: "Checkpoint", AdditionalFileName: "trajectory.xtc"},
	}

	pkg, err := Build(rec, uuid.New())
	require.NoError(t, err)
	assert.Contains(t, pkg.ResourceNames(), "trajectory.xtc-2")
}

func TestBuild_V2Record(t *testing.T) {
	v2, err := metadata.ExampleV1().ToV2()
	require.NoError(t, err)

	pkg, err := Build(v2, uuid.New())
	require.NoError(t, err)
	assert.Len(t, pkg.ResourceNames(), 5)
}

func TestBuild_NoFiles(t *testing.T) {
	rec := metadata.ExampleV1()
	rec.RequiredFiles = nil
	rec.AdditionalFiles = nil

	_, err := Build(rec, uuid.New())
	assert.True(t, errors.Is(err, ErrNoFiles))
}

func TestBuild_NonCanonicalDateOmitsCreated(t *testing.T) {
	rec := metadata.ExampleV1()
	rec.Initial.Date = metadata.DateString("July 13, 2020")

	pkg, err := Build(rec, uuid.New())
	require.NoError(t, err)
	_, ok := pkg.Descriptor()["created"]
	assert.False(t, ok)
}
