package metadata

// MetaV1 is the nested v1 record layout.
type MetaV1 struct {
	MdrepoID              *string            `json:"mdrepo_id,omitempty" toml:"mdrepo_id,omitempty"`
	Initial               InitialV1          `json:"initial" toml:"initial"`
	Software              Software           `json:"software" toml:"software"`
	RequiredFiles         *RequiredFiles     `json:"required_files,omitempty" toml:"required_files,omitempty"`
	AdditionalFiles       []AdditionalFileV1 `json:"additional_files,omitempty" toml:"additional_files,omitempty"`
	Proteins              []Protein          `json:"proteins,omitempty" toml:"proteins,omitempty"`
	Replicates            *Replicates        `json:"replicates,omitempty" toml:"replicates,omitempty"`
	Water                 *Water             `json:"water,omitempty" toml:"water,omitempty"`
	Ligands               []Ligand           `json:"ligands,omitempty" toml:"ligands,omitempty"`
	Solvents              []Solvent          `json:"solvents,omitempty" toml:"solvents,omitempty"`
	Forcefield            *Forcefield        `json:"forcefield,omitempty" toml:"forcefield,omitempty"`
	Temperature           *Temperature       `json:"temperature,omitempty" toml:"temperature,omitempty"`
	ProtonationMethod     *Protonation       `json:"protonation_method,omitempty" toml:"protonation_method,omitempty"`
	TimestepInformation   *Timestep          `json:"timestep_information,omitempty" toml:"timestep_information,omitempty"`
	Papers                []Paper            `json:"papers,omitempty" toml:"papers,omitempty"`
	Contributors          []Contributor      `json:"contributors,omitempty" toml:"contributors,omitempty"`
	SimulationPermissions []Permission       `json:"simulation_permissions,omitempty" toml:"simulation_permissions,omitempty"`
}

// InitialV1 is the identification block. Ligands and Solvents only exist
// because submitters put names here by mistake; canonicalization empties them.
type InitialV1 struct {
	ShortDescription       *string  `json:"short_description,omitempty" toml:"short_description,omitempty"`
	Description            *string  `json:"description,omitempty" toml:"description,omitempty"`
	ExternalLink           *string  `json:"external_link,omitempty" toml:"external_link,omitempty"`
	LeadContributorORCID   string   `json:"lead_contributor_orcid" toml:"lead_contributor_orcid"`
	Date                   Datelike `json:"date" toml:"date"`
	Commands               *string  `json:"commands,omitempty" toml:"commands,omitempty"`
	SimulationIsRestricted *bool    `json:"simulation_is_restricted,omitempty" toml:"simulation_is_restricted,omitempty"`
	ScientificGoal         *string  `json:"scientific_goal,omitempty" toml:"scientific_goal,omitempty"`
	Ligands                []string `json:"ligands,omitempty" toml:"ligands,omitempty"`
	Solvents               []string `json:"solvents,omitempty" toml:"solvents,omitempty"`
}

type AdditionalFileV1 struct {
	AdditionalFileType        string  `json:"additional_file_type" toml:"additional_file_type"`
	AdditionalFileName        string  `json:"additional_file_name" toml:"additional_file_name"`
	AdditionalFileDescription *string `json:"additional_file_description,omitempty" toml:"additional_file_description,omitempty"`
}

type Replicates struct {
	TotalReplicates *int `json:"total_replicates,omitempty" toml:"total_replicates,omitempty"`
	Replicate       *int `json:"replicate,omitempty" toml:"replicate,omitempty"`
}

// Water describes the water model. When IsPresent is false the other
// fields must be absent.
type Water struct {
	IsPresent         bool     `json:"is_present" toml:"is_present"`
	Model             *string  `json:"model,omitempty" toml:"model,omitempty"`
	Density           *float64 `json:"density,omitempty" toml:"density,omitempty"`
	WaterDensityUnits *string  `json:"water_density_units,omitempty" toml:"water_density_units,omitempty"`
}

type Ligand struct {
	Primary *bool  `json:"primary,omitempty" toml:"primary,omitempty"`
	Name    string `json:"name" toml:"name"`
	Smiles  string `json:"smiles" toml:"smiles"`
}

type Solvent struct {
	Name                      string  `json:"name" toml:"name"`
	IonConcentration          float64 `json:"ion_concentration" toml:"ion_concentration"`
	SolventConcentrationUnits *string `json:"solvent_concentration_units,omitempty" toml:"solvent_concentration_units,omitempty"`
}

type Forcefield struct {
	Forcefield         *string `json:"forcefield,omitempty" toml:"forcefield,omitempty"`
	ForcefieldComments *string `json:"forcefield_comments,omitempty" toml:"forcefield_comments,omitempty"`
}

type Temperature struct {
	Temperature *int `json:"temperature,omitempty" toml:"temperature,omitempty"`
}

type Protonation struct {
	ProtonationMethod *string `json:"protonation_method,omitempty" toml:"protonation_method,omitempty"`
}

type Timestep struct {
	IntegrationTimeStep *float64 `json:"integration_time_step,omitempty" toml:"integration_time_step,omitempty"`
}

// Paper is a citation. Volume and Number are canonicalized to strings.
type Paper struct {
	Primary *bool    `json:"primary,omitempty" toml:"primary,omitempty"`
	Title   string   `json:"title" toml:"title"`
	Authors string   `json:"authors" toml:"authors"`
	Journal string   `json:"journal" toml:"journal"`
	Volume  Numlike  `json:"volume" toml:"volume"`
	Number  *Numlike `json:"number,omitempty" toml:"number,omitempty"`
	Year    int      `json:"year" toml:"year"`
	Pages   *string  `json:"pages,omitempty" toml:"pages,omitempty"`
	DOI     *string  `json:"doi,omitempty" toml:"doi,omitempty"`
}

func (m *MetaV1) SchemaVersion() SchemaVersion { return SchemaV1 }

func (m *MetaV1) Identifier() string {
	if m.MdrepoID == nil {
		return ""
	}
	return *m.MdrepoID
}
