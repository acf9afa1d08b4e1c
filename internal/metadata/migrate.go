package metadata

import "fmt"

// Migrate maps rec to the target schema version through every intermediate
// version. The result shares no memory with rec and must be canonicalized
// again before it is validated or serialized.
func Migrate(rec Record, target SchemaVersion) (Record, error) {
	from := rec.SchemaVersion()
	if _, ok := schemaOrder[target]; !ok {
		return nil, &MigrationError{From: from, To: target, Message: "unknown target schema version"}
	}
	if schemaOrder[target] < schemaOrder[from] {
		return nil, &MigrationError{From: from, To: target, Message: "downgrading is not supported"}
	}
	if target == from {
		return nil, &MigrationError{From: from, To: target, Message: fmt.Sprintf("record is already at schema %s", target)}
	}

	current := rec
	for current.SchemaVersion() != target {
		var next Record
		var err error
		switch m := current.(type) {
		case *MetaLegacy:
			next, err = m.ToV1()
		case *MetaV1:
			next, err = m.ToV2()
		default:
			return nil, &MigrationError{From: from, To: target, Message: fmt.Sprintf("no migration from %s", current.SchemaVersion())}
		}
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// ToV1 maps a legacy record to the v1 layout. Every protein must resolve to
// a typed identity.
func (m *MetaLegacy) ToV1() (*MetaV1, error) {
	out := &MetaV1{
		MdrepoID: clonePtr(m.MdrepoID),
		Initial: InitialV1{
			ShortDescription:       clonePtr(m.Initial.ShortDescription),
			Description:            clonePtr(m.Initial.Description),
			ExternalLink:           clonePtr(m.Initial.ExternalLink),
			LeadContributorORCID:   m.Initial.LeadContributorORCID,
			Date:                   m.Initial.Date,
			Commands:               clonePtr(m.Initial.Commands),
			SimulationIsRestricted: clonePtr(m.Initial.SimulationIsRestricted),
		},
		Software:            cloneSoftware(m.Software),
		RequiredFiles:       clonePtr(m.RequiredFiles),
		Replicates:          cloneReplicates(m.Replicates),
		Water:               cloneWater(m.Water),
		Forcefield:          cloneForcefield(m.Forcefield),
		Temperature:         cloneTemperature(m.Temperature),
		ProtonationMethod:   cloneProtonation(m.ProtonationMethod),
		TimestepInformation: cloneTimestep(m.TimestepInformation),
		Contributors:        cloneContributors(m.Contributors),
	}

	for _, f := range m.AdditionalFiles {
		out.AdditionalFiles = append(out.AdditionalFiles, AdditionalFileV1{
			AdditionalFileType: f.AdditionalFileType,
			AdditionalFileName: f.AdditionalFileName,
		})
	}

	for i, p := range m.Proteins {
		idType, id := resolveProteinID(p.PDBID, p.UniprotID, p.MoleculeIDType, p.MoleculeID)
		if idType == nil || id == nil {
			return nil, &MigrationError{
				From:    SchemaLegacy,
				To:      SchemaV1,
				Field:   fmt.Sprintf("proteins[%d]", i),
				Message: "protein has no pdb_id, uniprot_id or molecule_id_type + molecule_id",
			}
		}
		out.Proteins = append(out.Proteins, Protein{MoleculeIDType: idType, MoleculeID: id})
	}

	for _, l := range m.Ligands {
		out.Ligands = append(out.Ligands, Ligand{Name: l.Name, Smiles: l.Smiles})
	}
	for _, s := range m.Solvents {
		out.Solvents = append(out.Solvents, Solvent{Name: s.Name, IonConcentration: s.IonConcentration})
	}
	for _, p := range m.Papers {
		out.Papers = append(out.Papers, Paper{
			Title:   p.Title,
			Authors: p.Authors,
			Journal: p.Journal,
			Volume:  p.Volume,
			Number:  clonePtr(p.Number),
			Year:    p.Year,
			Pages:   clonePtr(p.Pages),
		})
	}
	if len(m.SimulationPermissions) > 0 {
		out.SimulationPermissions = append([]Permission(nil), m.SimulationPermissions...)
	}

	return out, nil
}

// ToV2 flattens a v1 record. The required files group must be present;
// there is no derived fallback. initial.scientific_goal has no v2 field
// and is dropped.
func (m *MetaV1) ToV2() (*MetaV2, error) {
	if m.RequiredFiles == nil {
		return nil, &MigrationError{
			From:    SchemaV1,
			To:      SchemaV2,
			Field:   "required_files",
			Message: "required group is absent",
		}
	}

	out := &MetaV2{
		MdrepoID:               clonePtr(m.MdrepoID),
		ShortDescription:       clonePtr(m.Initial.ShortDescription),
		Description:            clonePtr(m.Initial.Description),
		ExternalLink:           clonePtr(m.Initial.ExternalLink),
		LeadContributorORCID:   m.Initial.LeadContributorORCID,
		Date:                   m.Initial.Date,
		RunCommands:            clonePtr(m.Initial.Commands),
		Software:               cloneSoftware(m.Software),
		RequiredFile:           *m.RequiredFiles,
		Contributors:           cloneContributors(m.Contributors),
		SimulationIsRestricted: clonePtr(m.Initial.SimulationIsRestricted),
	}

	if m.Replicates != nil {
		out.ReplicateID = clonePtr(m.Replicates.Replicate)
		out.TotalReplicates = clonePtr(m.Replicates.TotalReplicates)
	}
	if m.Water != nil {
		present := m.Water.IsPresent
		out.WaterIsPresent = &present
		out.WaterModel = clonePtr(m.Water.Model)
		out.WaterDensityKgM3 = clonePtr(m.Water.Density)
	}
	if m.Forcefield != nil {
		out.Forcefield = clonePtr(m.Forcefield.Forcefield)
		out.ForcefieldComments = clonePtr(m.Forcefield.ForcefieldComments)
	}
	if m.Temperature != nil {
		out.TemperatureKelvin = clonePtr(m.Temperature.Temperature)
	}
	if m.ProtonationMethod != nil {
		out.ProtonationMethod = clonePtr(m.ProtonationMethod.ProtonationMethod)
	}
	if m.TimestepInformation != nil {
		out.TimestepNs = clonePtr(m.TimestepInformation.IntegrationTimeStep)
	}

	for _, f := range m.AdditionalFiles {
		out.AdditionalFiles = append(out.AdditionalFiles, AdditionalFileV2{
			FileType:    f.AdditionalFileType,
			FileName:    f.AdditionalFileName,
			Description: clonePtr(f.AdditionalFileDescription),
		})
	}

	for i, p := range m.Proteins {
		idType, id := resolveProteinID(p.PDBID, p.UniprotID, p.MoleculeIDType, p.MoleculeID)
		if idType == nil || id == nil {
			return nil, &MigrationError{
				From:    SchemaV1,
				To:      SchemaV2,
				Field:   fmt.Sprintf("proteins[%d]", i),
				Message: "protein has no molecule identity",
			}
		}
		out.Proteins = append(out.Proteins, ProteinV2{
			IsPrimary:      clonePtr(p.Primary),
			MoleculeIDType: *idType,
			MoleculeID:     *id,
		})
	}

	for _, l := range m.Ligands {
		out.Ligands = append(out.Ligands, LigandV2{IsPrimary: clonePtr(l.Primary), Name: l.Name, Smiles: l.Smiles})
	}
	for _, name := range m.Initial.Ligands {
		out.Ligands = append(out.Ligands, LigandV2{Name: name})
	}
	for _, name := range m.Initial.Solvents {
		out.Ligands = append(out.Ligands, LigandV2{Name: name})
	}

	for _, s := range m.Solvents {
		out.Solvents = append(out.Solvents, SolventV2{
			Name:                     s.Name,
			IonConcentrationMolLiter: s.IonConcentration,
			ConcentrationUnits:       clonePtr(s.SolventConcentrationUnits),
		})
	}

	for _, p := range m.Papers {
		out.Papers = append(out.Papers, PaperV2{
			IsPrimary: clonePtr(p.Primary),
			Title:     p.Title,
			Authors:   p.Authors,
			Journal:   p.Journal,
			Volume:    p.Volume,
			Number:    clonePtr(p.Number),
			Year:      p.Year,
			Pages:     clonePtr(p.Pages),
			DOI:       clonePtr(p.DOI),
		})
	}

	if len(m.SimulationPermissions) > 0 {
		out.SimulationPermissions = append([]Permission(nil), m.SimulationPermissions...)
	}

	return out, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSoftware(s Software) Software {
	return Software{Name: s.Name, Version: clonePtr(s.Version)}
}

func cloneReplicates(r *Replicates) *Replicates {
	if r == nil {
		return nil
	}
	return &Replicates{TotalReplicates: clonePtr(r.TotalReplicates), Replicate: clonePtr(r.Replicate)}
}

func cloneWater(w *Water) *Water {
	if w == nil {
		return nil
	}
	return &Water{
		IsPresent:         w.IsPresent,
		Model:             clonePtr(w.Model),
		Density:           clonePtr(w.Density),
		WaterDensityUnits: clonePtr(w.WaterDensityUnits),
	}
}

func cloneForcefield(f *Forcefield) *Forcefield {
	if f == nil {
		return nil
	}
	return &Forcefield{Forcefield: clonePtr(f.Forcefield), ForcefieldComments: clonePtr(f.ForcefieldComments)}
}

func cloneTemperature(t *Temperature) *Temperature {
	if t == nil {
		return nil
	}
	return &Temperature{Temperature: clonePtr(t.Temperature)}
}

func cloneProtonation(p *Protonation) *Protonation {
	if p == nil {
		return nil
	}
	return &Protonation{ProtonationMethod: clonePtr(p.ProtonationMethod)}
}

func cloneTimestep(t *Timestep) *Timestep {
	if t == nil {
		return nil
	}
	return &Timestep{IntegrationTimeStep: clonePtr(t.IntegrationTimeStep)}
}

func cloneContributors(cs []Contributor) []Contributor {
	var out []Contributor
	for _, c := range cs {
		out = append(out, Contributor{
			Name:        c.Name,
			ORCID:       clonePtr(c.ORCID),
			Email:       clonePtr(c.Email),
			Institution: clonePtr(c.Institution),
		})
	}
	return out
}
