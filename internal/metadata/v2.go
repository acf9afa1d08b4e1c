package metadata

// MetaV2 is the flattened v2 record layout.
type MetaV2 struct {
	MdrepoID               *string            `json:"mdrepo_id,omitempty" toml:"mdrepo_id,omitempty"`
	ShortDescription       *string            `json:"short_description,omitempty" toml:"short_description,omitempty"`
	Description            *string            `json:"description,omitempty" toml:"description,omitempty"`
	ExternalLink           *string            `json:"external_link,omitempty" toml:"external_link,omitempty"`
	LeadContributorORCID   string             `json:"lead_contributor_orcid" toml:"lead_contributor_orcid"`
	Date                   Datelike           `json:"date" toml:"date"`
	RunCommands            *string            `json:"run_commands,omitempty" toml:"run_commands,omitempty"`
	Software               Software           `json:"software" toml:"software"`
	ReplicateID            *int               `json:"replicate_id,omitempty" toml:"replicate_id,omitempty"`
	TotalReplicates        *int               `json:"total_replicates,omitempty" toml:"total_replicates,omitempty"`
	WaterIsPresent         *bool              `json:"water_is_present,omitempty" toml:"water_is_present,omitempty"`
	WaterModel             *string            `json:"water_model,omitempty" toml:"water_model,omitempty"`
	WaterDensityKgM3       *float64           `json:"water_density_kg_m3,omitempty" toml:"water_density_kg_m3,omitempty"`
	Forcefield             *string            `json:"forcefield,omitempty" toml:"forcefield,omitempty"`
	ForcefieldComments     *string            `json:"forcefield_comments,omitempty" toml:"forcefield_comments,omitempty"`
	TemperatureKelvin      *int               `json:"temperature_kelvin,omitempty" toml:"temperature_kelvin,omitempty"`
	ProtonationMethod      *string            `json:"protonation_method,omitempty" toml:"protonation_method,omitempty"`
	TimestepNs             *float64           `json:"timestep_ns,omitempty" toml:"timestep_ns,omitempty"`
	RequiredFile           RequiredFiles      `json:"required_file" toml:"required_file"`
	AdditionalFiles        []AdditionalFileV2 `json:"additional_files,omitempty" toml:"additional_files,omitempty"`
	Proteins               []ProteinV2        `json:"proteins,omitempty" toml:"proteins,omitempty"`
	Ligands                []LigandV2         `json:"ligands,omitempty" toml:"ligands,omitempty"`
	Solvents               []SolventV2        `json:"solvents,omitempty" toml:"solvents,omitempty"`
	Papers                 []PaperV2          `json:"papers,omitempty" toml:"papers,omitempty"`
	Contributors           []Contributor      `json:"contributors,omitempty" toml:"contributors,omitempty"`
	SimulationIsRestricted *bool              `json:"simulation_is_restricted,omitempty" toml:"simulation_is_restricted,omitempty"`
	SimulationPermissions  []Permission       `json:"simulation_permissions,omitempty" toml:"simulation_permissions,omitempty"`
}

type AdditionalFileV2 struct {
	FileType    string  `json:"file_type" toml:"file_type"`
	FileName    string  `json:"file_name" toml:"file_name"`
	Description *string `json:"description,omitempty" toml:"description,omitempty"`
}

// LigandV2 accepts "primary" as an alias of "is_primary"; canonicalization
// folds the alias into IsPrimary.
type LigandV2 struct {
	IsPrimary *bool  `json:"is_primary,omitempty" toml:"is_primary,omitempty"`
	Primary   *bool  `json:"primary,omitempty" toml:"primary,omitempty"`
	Name      string `json:"name" toml:"name"`
	Smiles    string `json:"smiles" toml:"smiles"`
}

type SolventV2 struct {
	Name                     string  `json:"name" toml:"name"`
	IonConcentrationMolLiter float64 `json:"ion_concentration_mol_liter" toml:"ion_concentration_mol_liter"`
	ConcentrationUnits       *string `json:"concentration_units,omitempty" toml:"concentration_units,omitempty"`
}

// PaperV2 accepts "primary" as an alias of "is_primary", like LigandV2.
type PaperV2 struct {
	IsPrimary *bool    `json:"is_primary,omitempty" toml:"is_primary,omitempty"`
	Primary   *bool    `json:"primary,omitempty" toml:"primary,omitempty"`
	Title     string   `json:"title" toml:"title"`
	Authors   string   `json:"authors" toml:"authors"`
	Journal   string   `json:"journal" toml:"journal"`
	Volume    Numlike  `json:"volume" toml:"volume"`
	Number    *Numlike `json:"number,omitempty" toml:"number,omitempty"`
	Year      int      `json:"year" toml:"year"`
	Pages     *string  `json:"pages,omitempty" toml:"pages,omitempty"`
	DOI       *string  `json:"doi,omitempty" toml:"doi,omitempty"`
}

func (m *MetaV2) SchemaVersion() SchemaVersion { return SchemaV2 }

func (m *MetaV2) Identifier() string {
	if m.MdrepoID == nil {
		return ""
	}
	return *m.MdrepoID
}
