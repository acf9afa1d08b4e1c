package metadata

import (
	"fmt"
	"strings"
)

// SchemaVersion names one closed field-set shape of a metadata record.
type SchemaVersion string

const (
	SchemaLegacy SchemaVersion = "legacy"
	SchemaV1     SchemaVersion = "v1"
	SchemaV2     SchemaVersion = "v2"
)

// schemaOrder ranks versions for migration direction checks.
var schemaOrder = map[SchemaVersion]int{
	SchemaLegacy: 0,
	SchemaV1:     1,
	SchemaV2:     2,
}

// ParseSchemaVersion accepts "legacy", "v1", "v2" and the bare digits "1", "2".
func ParseSchemaVersion(name string) (SchemaVersion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "legacy", "v0", "0":
		return SchemaLegacy, nil
	case "v1", "1", "":
		return SchemaV1, nil
	case "v2", "2":
		return SchemaV2, nil
	default:
		return "", fmt.Errorf("unknown schema version %q (expected legacy, v1 or v2)", name)
	}
}

// Record is implemented by the model of every schema version.
type Record interface {
	SchemaVersion() SchemaVersion

	// Canonicalize brings the record to normal form in place. It is
	// idempotent and fails only on an unparseable date.
	Canonicalize() error

	// Validate reports every rule violation without mutating the record.
	Validate(rules Rules) ValidationResult

	// Identifier returns the repository id, or "" when the record has none.
	Identifier() string
}

// TemperatureRange is a closed Kelvin interval.
type TemperatureRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r TemperatureRange) Contains(t int) bool { return t >= r.Min && t <= r.Max }

func (r TemperatureRange) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

// Rules holds the parameters the validator applies to one schema version.
type Rules struct {
	Temperature TemperatureRange
}

// Default temperature bounds per schema version.
const (
	MinTemperatureK       = 273
	MaxTemperatureK       = 374
	MaxLegacyTemperatureK = 5000
)

// DefaultRules returns the rule parameters declared for version.
func DefaultRules(version SchemaVersion) Rules {
	if version == SchemaLegacy {
		return Rules{Temperature: TemperatureRange{Min: MinTemperatureK, Max: MaxLegacyTemperatureK}}
	}
	return Rules{Temperature: TemperatureRange{Min: MinTemperatureK, Max: MaxTemperatureK}}
}

// Finding is one (field path, message) pair produced by validation.
type Finding struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f Finding) String() string { return f.Path + ": " + f.Message }

// Section returns the top-level field the finding belongs to.
func (f Finding) Section() string {
	section := f.Path
	if i := strings.IndexAny(section, ".["); i >= 0 {
		section = section[:i]
	}
	return section
}

// ValidationResult contains the outcome of record validation.
// If Valid is false, Findings lists every violation in rule order.
type ValidationResult struct {
	Valid    bool
	Findings []Finding
}

func newValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// AddFinding appends a finding and marks the result as invalid.
func (v *ValidationResult) AddFinding(path string, format string, args ...interface{}) {
	v.Valid = false
	v.Findings = append(v.Findings, Finding{Path: path, Message: fmt.Sprintf(format, args...)})
}

// HasErrors returns true if the validation result contains findings.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Findings) > 0
}

// ErrorString returns all findings as a single semicolon-separated string.
func (v *ValidationResult) ErrorString() string {
	parts := make([]string, len(v.Findings))
	for i, f := range v.Findings {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}

// Software names the simulation engine.
type Software struct {
	Name    string  `json:"name" toml:"name"`
	Version *string `json:"version,omitempty" toml:"version,omitempty"`
}

// RequiredFiles names the three files every simulation depends on.
type RequiredFiles struct {
	TrajectoryFileName string `json:"trajectory_file_name" toml:"trajectory_file_name"`
	StructureFileName  string `json:"structure_file_name" toml:"structure_file_name"`
	TopologyFileName   string `json:"topology_file_name" toml:"topology_file_name"`
}

// Contributor is shared by every schema version.
type Contributor struct {
	Name        string  `json:"name" toml:"name"`
	ORCID       *string `json:"orcid,omitempty" toml:"orcid,omitempty"`
	Email       *string `json:"email,omitempty" toml:"email,omitempty"`
	Institution *string `json:"institution,omitempty" toml:"institution,omitempty"`
}

// Permission grants a user access to a restricted simulation.
type Permission struct {
	UserORCID string `json:"user_orcid" toml:"user_orcid"`
	CanEdit   bool   `json:"can_edit" toml:"can_edit"`
	CanView   bool   `json:"can_view" toml:"can_view"`
}
