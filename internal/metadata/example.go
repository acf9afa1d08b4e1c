package metadata

// ExampleV1 returns a fully populated, canonical and valid v1 record. It is
// what `mdrmeta example` prints and a starting point for new submissions.
func ExampleV1() *MetaV1 {
	yes, no := true, false
	one, ten := 1, 10
	temp := 273
	timestep := 2.0
	density := 0.986
	number4, number7472 := NumText("4"), NumText("7472")

	return &MetaV1{
		Initial: InitialV1{
			ShortDescription: strPtr("Adaptive sampling of AncFT luciferase"),
			Description: strPtr("Adaptive sampling of AncFT luciferase performed in HTMD, " +
				"using a C-alpha RMSD metric. 5 microseconds in total. " +
				"10 epochs of 10 parallel simulations each."),
			ExternalLink:         strPtr("http://external.link"),
			LeadContributorORCID: "0000-0000-0000-000X",
			Date:                 DateString("2000-01-01"),
			Commands: strPtr("gmx_mpi mdrun -s fname.tpr -deffnm fname -v -c fname.pdb " +
				"-cpi fname.cpt -maxh clock_time -noappend -update gpu -bonded gpu " +
				"-pme gpu -pmefft gpu -nb gpu"),
			SimulationIsRestricted: &no,
		},
		Software: Software{Name: "GROMACS", Version: strPtr("2016.5")},
		RequiredFiles: &RequiredFiles{
			TrajectoryFileName: "trajectory.xtc",
			StructureFileName:  "structure.pdb",
			TopologyFileName:   "topology.psf",
		},
		AdditionalFiles: []AdditionalFileV1{
			{
				AdditionalFileType:        "Checkpoint",
				AdditionalFileName:        "abc.cpt",
				AdditionalFileDescription: strPtr("Last GROMACS checkpoint of the simulation"),
			},
			{AdditionalFileType: "Miscellaneous", AdditionalFileName: "xyz.tpr"},
		},
		Proteins: []Protein{
			TypedProtein(MoleculeIDTypePDB, "7QXR"),
			TypedProtein(MoleculeIDTypeUniprot, "A7M120"),
		},
		Replicates: &Replicates{TotalReplicates: &ten, Replicate: &one},
		Water: &Water{
			IsPresent:         true,
			Model:             strPtr("TIP3P"),
			Density:           &density,
			WaterDensityUnits: strPtr("g/m^3"),
		},
		Ligands: []Ligand{
			{Name: "Foropafant", Smiles: "CC(C)C1=CC(=C(C(=C1)C(C)C)C2=CSC(=N2)N(CCN(C)C)CC3=CN=CC=C3)C(C)C"},
			{Name: "Vipadenant", Smiles: "CC1=C(C=CC(=C1)CN2C3=NC(=NC(=C3N=N2)C4=CC=CO4)N)N"},
		},
		Solvents: []Solvent{
			{Name: "Sodium", IonConcentration: 0.157, SolventConcentrationUnits: strPtr("mol/L")},
			{Name: "Chloride", IonConcentration: 0.225, SolventConcentrationUnits: strPtr("mol/L")},
		},
		Forcefield: &Forcefield{
			Forcefield:         strPtr("Amber99SB-ILDN"),
			ForcefieldComments: strPtr("ligand params: GAFF"),
		},
		Temperature:         &Temperature{Temperature: &temp},
		ProtonationMethod:   &Protonation{ProtonationMethod: strPtr("PROPKA")},
		TimestepInformation: &Timestep{IntegrationTimeStep: &timestep},
		Papers: []Paper{
			{
				Primary: &yes,
				Title:   "GPCRmd uncovers the dynamics of the 3D-GPCRome",
				Authors: "Rodríguez, I., Fontanals, M., Tielmann, J.S. et al.",
				Journal: "Nat Methods",
				Volume:  NumText("17"),
				Number:  &number4,
				Year:    2000,
				Pages:   strPtr("777–787"),
				DOI:     strPtr("10.1038/x41594-020-0884-y"),
			},
			{
				Title:   "Adrenaline-activated structure of β2-adrenoceptor stabilized by an engineered nanobody",
				Authors: "Ring, A., Manglik, A., Kruse, A., Enos, M., Weis, W., Garcia, K., Kobilka, B.",
				Journal: "Nature",
				Volume:  NumText("502"),
				Number:  &number7472,
				Year:    2013,
				Pages:   strPtr("575-579"),
				DOI:     strPtr("10.1038/nature12572"),
			},
		},
		Contributors: []Contributor{
			{
				Name:        "Contributor1",
				ORCID:       strPtr("0000-0000-0000-000X"),
				Email:       strPtr("email@place.edu"),
				Institution: strPtr("Institution"),
			},
			{
				Name:        "Contributor2",
				ORCID:       strPtr("0000-0000-0000-000X"),
				Email:       strPtr("email@anotherplace.edu"),
				Institution: strPtr("Some Other Institution"),
			},
		},
		SimulationPermissions: []Permission{
			{UserORCID: "0000-0000-0000-000X", CanEdit: true, CanView: false},
			{UserORCID: "0000-0000-0000-001X", CanEdit: false, CanView: true},
		},
	}
}
