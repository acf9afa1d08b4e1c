package metadata

// Molecule id types produced when collapsing the legacy protein shapes.
const (
	MoleculeIDTypePDB     = "PDB"
	MoleculeIDTypeUniprot = "Uniprot"
)

// ProteinShape tags which input shape a protein entry was decoded from.
type ProteinShape int

const (
	ProteinShapeInvalid ProteinShape = iota
	ProteinShapePDB
	ProteinShapeUniprot
	ProteinShapeTyped
)

func (s ProteinShape) String() string {
	switch s {
	case ProteinShapePDB:
		return "pdb"
	case ProteinShapeUniprot:
		return "uniprot"
	case ProteinShapeTyped:
		return "typed"
	default:
		return "invalid"
	}
}

// Protein is a molecular target in a v1 record. Exactly one shape is
// populated after decoding: {pdb_id}, {uniprot_id} or
// {molecule_id_type, molecule_id}. Canonicalization leaves only the typed shape.
type Protein struct {
	Primary        *bool   `json:"primary,omitempty" toml:"primary,omitempty"`
	PDBID          *string `json:"pdb_id,omitempty" toml:"pdb_id,omitempty"`
	UniprotID      *string `json:"uniprot_id,omitempty" toml:"uniprot_id,omitempty"`
	MoleculeIDType *string `json:"molecule_id_type,omitempty" toml:"molecule_id_type,omitempty"`
	MoleculeID     *string `json:"molecule_id,omitempty" toml:"molecule_id,omitempty"`
}

// TypedProtein builds the canonical shape.
func TypedProtein(idType, id string) Protein {
	return Protein{MoleculeIDType: &idType, MoleculeID: &id}
}

// Shape reports the populated shape. A PDB id wins over a Uniprot id,
// which wins over the typed fields.
func (p Protein) Shape() ProteinShape {
	switch {
	case p.PDBID != nil:
		return ProteinShapePDB
	case p.UniprotID != nil:
		return ProteinShapeUniprot
	case p.MoleculeIDType != nil && p.MoleculeID != nil:
		return ProteinShapeTyped
	default:
		return ProteinShapeInvalid
	}
}

// narrow drops the fields of every shape other than the winning one.
func (p *Protein) narrow() ProteinShape {
	shape := p.Shape()
	switch shape {
	case ProteinShapePDB:
		p.UniprotID, p.MoleculeIDType, p.MoleculeID = nil, nil, nil
	case ProteinShapeUniprot:
		p.PDBID, p.MoleculeIDType, p.MoleculeID = nil, nil, nil
	}
	return shape
}

// collapse rewrites a legacy shape into the typed one.
func (p *Protein) collapse() {
	idType, id := resolveProteinID(p.PDBID, p.UniprotID, p.MoleculeIDType, p.MoleculeID)
	p.PDBID, p.UniprotID = nil, nil
	p.MoleculeIDType, p.MoleculeID = idType, id
}

// LegacyProtein is the permissive legacy layout where any of the four id
// fields may be present.
type LegacyProtein struct {
	MoleculeIDType *string `json:"molecule_id_type,omitempty" toml:"molecule_id_type,omitempty"`
	MoleculeID     *string `json:"molecule_id,omitempty" toml:"molecule_id,omitempty"`
	PDBID          *string `json:"pdb_id,omitempty" toml:"pdb_id,omitempty"`
	UniprotID      *string `json:"uniprot_id,omitempty" toml:"uniprot_id,omitempty"`
}

func (p *LegacyProtein) collapse() {
	idType, id := resolveProteinID(p.PDBID, p.UniprotID, p.MoleculeIDType, p.MoleculeID)
	p.PDBID, p.UniprotID = nil, nil
	p.MoleculeIDType, p.MoleculeID = idType, id
}

// ProteinV2 is the only protein shape v2 knows.
type ProteinV2 struct {
	IsPrimary      *bool  `json:"is_primary,omitempty" toml:"is_primary,omitempty"`
	MoleculeIDType string `json:"molecule_id_type" toml:"molecule_id_type"`
	MoleculeID     string `json:"molecule_id" toml:"molecule_id"`
}

func resolveProteinID(pdb, uniprot, idType, id *string) (*string, *string) {
	switch {
	case pdb != nil:
		return strPtr(MoleculeIDTypePDB), strPtr(*pdb)
	case uniprot != nil:
		return strPtr(MoleculeIDTypeUniprot), strPtr(*uniprot)
	default:
		return cloneStr(idType), cloneStr(id)
	}
}

func strPtr(s string) *string { return &s }

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	return strPtr(*p)
}
