package metadata

// MetaLegacy is the permissive pre-v1 layout.
type MetaLegacy struct {
	MdrepoID              *string                `json:"mdrepo_id,omitempty" toml:"mdrepo_id,omitempty"`
	Initial               InitialLegacy          `json:"initial" toml:"initial"`
	Software              Software               `json:"software" toml:"software"`
	RequiredFiles         *RequiredFiles         `json:"required_files,omitempty" toml:"required_files,omitempty"`
	AdditionalFiles       []AdditionalFileLegacy `json:"additional_files,omitempty" toml:"additional_files,omitempty"`
	Proteins              []LegacyProtein        `json:"proteins,omitempty" toml:"proteins,omitempty"`
	Replicates            *Replicates            `json:"replicates,omitempty" toml:"replicates,omitempty"`
	Water                 *Water                 `json:"water,omitempty" toml:"water,omitempty"`
	Ligands               []LegacyLigand         `json:"ligands,omitempty" toml:"ligands,omitempty"`
	Solvents              []LegacySolvent        `json:"solvents,omitempty" toml:"solvents,omitempty"`
	Forcefield            *Forcefield            `json:"forcefield,omitempty" toml:"forcefield,omitempty"`
	Temperature           *Temperature           `json:"temperature,omitempty" toml:"temperature,omitempty"`
	ProtonationMethod     *Protonation           `json:"protonation_method,omitempty" toml:"protonation_method,omitempty"`
	TimestepInformation   *Timestep              `json:"timestep_information,omitempty" toml:"timestep_information,omitempty"`
	Papers                []LegacyPaper          `json:"papers,omitempty" toml:"papers,omitempty"`
	Contributors          []Contributor          `json:"contributors,omitempty" toml:"contributors,omitempty"`
	SimulationPermissions []Permission           `json:"simulation_permissions,omitempty" toml:"simulation_permissions,omitempty"`
}

type InitialLegacy struct {
	ShortDescription       *string  `json:"short_description,omitempty" toml:"short_description,omitempty"`
	Description            *string  `json:"description,omitempty" toml:"description,omitempty"`
	ExternalLink           *string  `json:"external_link,omitempty" toml:"external_link,omitempty"`
	LeadContributorORCID   string   `json:"lead_contributor_orcid" toml:"lead_contributor_orcid"`
	Date                   Datelike `json:"date" toml:"date"`
	Commands               *string  `json:"commands,omitempty" toml:"commands,omitempty"`
	SimulationIsRestricted *bool    `json:"simulation_is_restricted,omitempty" toml:"simulation_is_restricted,omitempty"`
}

type AdditionalFileLegacy struct {
	AdditionalFileType string `json:"additional_file_type" toml:"additional_file_type"`
	AdditionalFileName string `json:"additional_file_name" toml:"additional_file_name"`
}

type LegacyLigand struct {
	Name   string `json:"name" toml:"name"`
	Smiles string `json:"smiles" toml:"smiles"`
}

type LegacySolvent struct {
	Name             string  `json:"name" toml:"name"`
	IonConcentration float64 `json:"ion_concentration" toml:"ion_concentration"`
}

type LegacyPaper struct {
	Title   string   `json:"title" toml:"title"`
	Authors string   `json:"authors" toml:"authors"`
	Journal string   `json:"journal" toml:"journal"`
	Volume  Numlike  `json:"volume" toml:"volume"`
	Number  *Numlike `json:"number,omitempty" toml:"number,omitempty"`
	Year    int      `json:"year" toml:"year"`
	Pages   *string  `json:"pages,omitempty" toml:"pages,omitempty"`
}

func (m *MetaLegacy) SchemaVersion() SchemaVersion { return SchemaLegacy }

func (m *MetaLegacy) Identifier() string {
	if m.MdrepoID == nil {
		return ""
	}
	return *m.MdrepoID
}
