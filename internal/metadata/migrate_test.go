package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToV2_FlattensExample(t *testing.T) {
	src := ExampleV1()
	v2, err := src.ToV2()
	require.NoError(t, err)

	assert.Equal(t, src.Initial.LeadContributorORCID, v2.LeadContributorORCID)
	assert.Equal(t, "2000-01-01", v2.Date.String())
	assert.Equal(t, src.Initial.Commands, v2.RunCommands)
	assert.Equal(t, 1, *v2.ReplicateID)
	assert.Equal(t, 10, *v2.TotalReplicates)
	assert.True(t, *v2.WaterIsPresent)
	assert.Equal(t, "TIP3P", *v2.WaterModel)
	assert.Equal(t, 0.986, *v2.WaterDensityKgM3)
	assert.Equal(t, "Amber99SB-ILDN", *v2.Forcefield)
	assert.Equal(t, 273, *v2.TemperatureKelvin)
	assert.Equal(t, "PROPKA", *v2.ProtonationMethod)
	assert.Equal(t, 2.0, *v2.TimestepNs)
	assert.Equal(t, *src.RequiredFiles, v2.RequiredFile)
	assert.False(t, *v2.SimulationIsRestricted)

	require.Len(t, v2.AdditionalFiles, 2)
	assert.Equal(t, "Checkpoint", v2.AdditionalFiles[0].FileType)
	assert.Equal(t, "abc.cpt", v2.AdditionalFiles[0].FileName)
	assert.Nil(t, v2.AdditionalFiles[1].Description)

	assert.Equal(t, []ProteinV2{
		{MoleculeIDType: "PDB", MoleculeID: "7QXR"},
		{MoleculeIDType: "Uniprot", MoleculeID: "A7M120"},
	}, v2.Proteins)

	require.Len(t, v2.Solvents, 2)
	assert.Equal(t, 0.157, v2.Solvents[0].IonConcentrationMolLiter)
	assert.Equal(t, "mol/L", *v2.Solvents[0].ConcentrationUnits)

	require.Len(t, v2.Papers, 2)
	assert.True(t, *v2.Papers[0].IsPrimary)
	assert.Nil(t, v2.Papers[1].IsPrimary)
	assert.Len(t, v2.Contributors, 2)
	assert.Len(t, v2.SimulationPermissions, 2)

	assert.True(t, Validate(v2, DefaultRules(SchemaV2)).Valid)
}

func TestToV2_MissingRequiredFiles(t *testing.T) {
	src := ExampleV1()
	src.RequiredFiles = nil

	_, err := src.ToV2()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMigration))
	var me *MigrationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "required_files", me.Field)
	assert.Equal(t, SchemaV1, me.From)
	assert.Equal(t, SchemaV2, me.To)
}

func TestToV2_OptionalGroupsStayAbsent(t *testing.T) {
	m := decodeV1(t, minimalV1TOML+"\n[required_files]\ntrajectory_file_name = \"t\"\nstructure_file_name = \"s\"\ntopology_file_name = \"p\"\n", FormatTOML)
	require.NoError(t, Canonicalize(m))

	v2, err := m.ToV2()
	require.NoError(t, err)
	assert.Nil(t, v2.WaterIsPresent)
	assert.Nil(t, v2.TemperatureKelvin)
	assert.Nil(t, v2.Proteins)
	assert.Nil(t, v2.Papers)
}

func TestToV2_DoesNotAlias(t *testing.T) {
	src := ExampleV1()
	v2, err := src.ToV2()
	require.NoError(t, err)

	*v2.WaterModel = "changed"
	v2.Software.Name = "changed"
	*v2.Software.Version = "changed"
	*v2.Contributors[0].Email = "changed"
	v2.SimulationPermissions[0].CanEdit = false

	assert.Equal(t, ExampleV1(), src)
}

func TestLegacyToV1(t *testing.T) {
	rec, err := Decode(readTestdata(t, "legacy.toml"), FormatTOML, SchemaLegacy)
	require.NoError(t, err)
	require.NoError(t, Canonicalize(rec))

	v1, err := rec.(*MetaLegacy).ToV1()
	require.NoError(t, err)
	assert.Equal(t, []Protein{TypedProtein("PDB", "1ABC"), TypedProtein("Uniprot", "P69905")}, v1.Proteins)
	assert.Equal(t, []AdditionalFileV1{{AdditionalFileType: "Input", AdditionalFileName: "prod.in"}}, v1.AdditionalFiles)
	assert.Equal(t, "Retinal", v1.Ligands[0].Name)
	assert.Nil(t, v1.Ligands[0].Primary)
	assert.Nil(t, v1.Solvents[0].SolventConcentrationUnits)
	assert.Equal(t, "prod.nc", v1.RequiredFiles.TrajectoryFileName)
}

func TestLegacyToV1_ProteinWithoutIdentity(t *testing.T) {
	idType := "PDB"
	m := &MetaLegacy{
		Initial:  InitialLegacy{LeadContributorORCID: "0000-0002-1825-0097", Date: DateString("2020-01-01")},
		Software: Software{Name: "a"},
		Proteins: []LegacyProtein{{MoleculeIDType: &idType}},
	}

	_, err := m.ToV1()
	require.Error(t, err)
	var me *MigrationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "proteins[0]", me.Field)
	assert.Equal(t, SchemaLegacy, me.From)
}

func TestMigrate_Chain(t *testing.T) {
	rec, err := Decode(readTestdata(t, "legacy.toml"), FormatTOML, SchemaLegacy)
	require.NoError(t, err)
	require.NoError(t, Canonicalize(rec))

	out, err := Migrate(rec, SchemaV2)
	require.NoError(t, err)
	require.NoError(t, Canonicalize(out))
	assert.Equal(t, SchemaV2, out.SchemaVersion())
	assert.Equal(t, "MDR_00000001", out.Identifier())

	v2 := out.(*MetaV2)
	assert.Equal(t, "prod.pdb", v2.RequiredFile.StructureFileName)
	assert.Equal(t, 1200, *v2.TemperatureKelvin)
	assert.Equal(t, SchemaLegacy, rec.SchemaVersion())
}

func TestMigrate_Direction(t *testing.T) {
	_, err := Migrate(ExampleV1(), SchemaLegacy)
	assert.True(t, errors.Is(err, ErrMigration))

	_, err = Migrate(ExampleV1(), SchemaV1)
	assert.True(t, errors.Is(err, ErrMigration))

	_, err = Migrate(ExampleV1(), SchemaVersion("v9"))
	assert.True(t, errors.Is(err, ErrMigration))
}

func TestMigrate_ResultNeedsCanonicalization(t *testing.T) {
	m := decodeV1(t, string(readTestdata(t, "MDR_00000002.toml")), FormatTOML)

	out, err := Migrate(m, SchemaV2)
	require.NoError(t, err)
	v2 := out.(*MetaV2)
	assert.True(t, v2.Date.IsNative())

	require.NoError(t, Canonicalize(v2))
	assert.Equal(t, "2020-07-13", v2.Date.String())
	assert.Equal(t, NumText("17"), v2.Papers[0].Volume)
}
