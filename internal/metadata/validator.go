package metadata

import (
	"fmt"
	"math"
	"regexp"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
)

// Validate checks a canonical record against the domain rules and returns
// every finding. It never mutates rec and never stops at the first problem.
func Validate(rec Record, rules Rules) ValidationResult {
	return rec.Validate(rules)
}

// IsValidORCID reports whether s has the dddd-dddd-dddd-dddX form.
func IsValidORCID(s string) bool {
	return orcidPattern.MatchString(s)
}

func (m *MetaV1) Validate(rules Rules) ValidationResult {
	result := newValidationResult()

	if m.Temperature != nil {
		checkTemperature(&result, "temperature.temperature", m.Temperature.Temperature, rules)
	}
	checkDate(&result, "initial.date", m.Initial.Date)
	checkORCID(&result, "initial.lead_contributor_orcid", m.Initial.LeadContributorORCID)
	checkContributors(&result, m.Contributors)
	checkPermissions(&result, m.SimulationPermissions)
	if m.Water != nil {
		checkWater(&result, "water.", "water.is_present", m.Water.IsPresent,
			m.Water.Model, m.Water.Density, m.Water.WaterDensityUnits,
			"model", "density", "water_density_units")
	}
	for i, s := range m.Solvents {
		checkFinite(&result, fmt.Sprintf("solvents[%d].ion_concentration", i), &s.IonConcentration)
	}
	if m.TimestepInformation != nil {
		checkFinite(&result, "timestep_information.integration_time_step", m.TimestepInformation.IntegrationTimeStep)
	}

	return result
}

func (m *MetaLegacy) Validate(rules Rules) ValidationResult {
	result := newValidationResult()

	if m.Temperature != nil {
		checkTemperature(&result, "temperature.temperature", m.Temperature.Temperature, rules)
	}
	checkDate(&result, "initial.date", m.Initial.Date)
	checkORCID(&result, "initial.lead_contributor_orcid", m.Initial.LeadContributorORCID)
	checkContributors(&result, m.Contributors)
	checkPermissions(&result, m.SimulationPermissions)
	if m.Water != nil {
		checkWater(&result, "water.", "water.is_present", m.Water.IsPresent,
			m.Water.Model, m.Water.Density, m.Water.WaterDensityUnits,
			"model", "density", "water_density_units")
	}
	for i, s := range m.Solvents {
		checkFinite(&result, fmt.Sprintf("solvents[%d].ion_concentration", i), &s.IonConcentration)
	}
	if m.TimestepInformation != nil {
		checkFinite(&result, "timestep_information.integration_time_step", m.TimestepInformation.IntegrationTimeStep)
	}

	return result
}

func (m *MetaV2) Validate(rules Rules) ValidationResult {
	result := newValidationResult()

	checkTemperature(&result, "temperature_kelvin", m.TemperatureKelvin, rules)
	checkDate(&result, "date", m.Date)
	checkORCID(&result, "lead_contributor_orcid", m.LeadContributorORCID)
	checkContributors(&result, m.Contributors)
	checkPermissions(&result, m.SimulationPermissions)
	present := m.WaterIsPresent == nil || *m.WaterIsPresent
	checkWater(&result, "", "water_is_present", present,
		m.WaterModel, m.WaterDensityKgM3, nil,
		"water_model", "water_density_kg_m3", "")
	for i, s := range m.Solvents {
		checkFinite(&result, fmt.Sprintf("solvents[%d].ion_concentration_mol_liter", i), &s.IonConcentrationMolLiter)
	}
	checkFinite(&result, "timestep_ns", m.TimestepNs)

	return result
}

func checkTemperature(result *ValidationResult, path string, temp *int, rules Rules) {
	if temp == nil {
		return
	}
	if !rules.Temperature.Contains(*temp) {
		result.AddFinding(path, "%q must be in the range %s", fmt.Sprint(*temp), rules.Temperature)
	}
}

func checkDate(result *ValidationResult, path string, date Datelike) {
	if date.IsNative() {
		result.AddFinding(path, "invalid date")
		return
	}
	if !datePattern.MatchString(date.String()) {
		result.AddFinding(path, "invalid date %q", date.String())
	}
}

func checkORCID(result *ValidationResult, path, orcid string) {
	if !IsValidORCID(orcid) {
		result.AddFinding(path, "invalid ORCID %q", orcid)
	}
}

func checkContributors(result *ValidationResult, contributors []Contributor) {
	for i, c := range contributors {
		if c.ORCID != nil {
			checkORCID(result, fmt.Sprintf("contributors[%d].orcid", i), *c.ORCID)
		}
	}
}

func checkPermissions(result *ValidationResult, perms []Permission) {
	for i, p := range perms {
		checkORCID(result, fmt.Sprintf("simulation_permissions[%d].user_orcid", i), p.UserORCID)
	}
}

// checkWater applies the finiteness and absent-if-not-present rules. An
// empty unitsField means the schema version has no units field.
func checkWater(result *ValidationResult, prefix, presentField string, isPresent bool,
	model *string, density *float64, units *string,
	modelField, densityField, unitsField string) {

	checkFinite(result, prefix+densityField, density)
	if isPresent {
		return
	}
	msg := fmt.Sprintf("should not be present if %s is false", presentField)
	if model != nil {
		result.AddFinding(prefix+modelField, "%s", msg)
	}
	if density != nil {
		result.AddFinding(prefix+densityField, "%s", msg)
	}
	if unitsField != "" && units != nil {
		result.AddFinding(prefix+unitsField, "%s", msg)
	}
}

func checkFinite(result *ValidationResult, path string, v *float64) {
	if v == nil {
		return
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		result.AddFinding(path, "%v is not a finite value", *v)
	}
}
