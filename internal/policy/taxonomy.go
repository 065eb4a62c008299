package policy

import (
	"fmt"
	"strings"
)

// ResponseType classifies a strategy by the nature of its intervention.
type ResponseType string

const (
	ResponseImmediate    ResponseType = "immediate"    // urgent control for emergencies (adulticides, triage)
	ResponseActive       ResponseType = "active"       // active breeding-site and vector control
	ResponsePreventive   ResponseType = "preventive"   // education and sustainable prevention
	ResponseCoordination ResponseType = "coordination" // institutional coordination and sustainability
	ResponseMonitoring   ResponseType = "monitoring"   // surveillance, early warning, technology
)

// ParseResponseType validates a response-type string from configuration.
func ParseResponseType(s string) (ResponseType, error) {
	switch rt := ResponseType(strings.ToLower(strings.TrimSpace(s))); rt {
	case ResponseImmediate, ResponseActive, ResponsePreventive, ResponseCoordination, ResponseMonitoring:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown response type %q", s)
	}
}

// Severity is one of the four ordered outbreak-severity tiers.
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityModerate  Severity = "moderate"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

// Level returns the 1-4 alert level of the tier.
func (s Severity) Level() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityModerate:
		return 2
	case SeverityHigh:
		return 3
	case SeverityEmergency:
		return 4
	}
	return 0
}

// ParseSeverity validates a severity string from configuration.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityLow, SeverityModerate, SeverityHigh, SeverityEmergency:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q (want low, moderate, high or emergency)", s)
	}
}

// classifyPrefixLen is how much of a strategy name the fallback classifier
// compares when no exact taxonomy entry exists.
const classifyPrefixLen = 50

// Taxonomy maps full strategy names to their response type.
type Taxonomy map[string]ResponseType

// Classify returns the response type for a strategy name. Lookup order:
// exact match, then a case-insensitive match on the first 50 characters,
// then ResponseActive.
func (t Taxonomy) Classify(name string) ResponseType {
	if rt, ok := t[name]; ok {
		return rt
	}
	want := strings.ToLower(prefix(strings.TrimSpace(name), classifyPrefixLen))
	for _, key := range sortedKeys(t) {
		if strings.ToLower(prefix(strings.TrimSpace(key), classifyPrefixLen)) == want {
			return t[key]
		}
	}
	return ResponseActive
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// DefaultTaxonomy returns the built-in strategy catalogue classification.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"Apply chemical adulticides such as malathion or deltamethrin for rapid control of the adult vector in open spaces.":            ResponseImmediate,
		"Rapidly implement triage protocols and strengthen health staff training for clinical dengue management.":                       ResponseImmediate,
		"Apply chemical larvicides in specific large-volume breeding sites where physical control is not feasible.":                     ResponseActive,
		"Apply biological methods for larval vector control, including larvivorous fish and Bacillus thuringiensis.":                    ResponseActive,
		"Implement physical control actions in household and community settings to reduce or eliminate vector breeding sites.":          ResponseActive,
		"Carry out targeted identification of breeding sites through direct inspection and georeferencing tools.":                       ResponseActive,
		"Encourage the use of individual protection measures, such as repellent and physical barriers, especially in risk groups.":      ResponseActive,
		"Promote sustainable preventive practices through educational campaigns, behavior change and participatory surveillance.":       ResponsePreventive,
		"Broadcast immediate preventive messages through channels such as SMS, social media and loudspeakers in outbreak zones.":        ResponsePreventive,
		"Strengthen dengue risk perception and promote community preventive practices through information and education.":               ResponsePreventive,
		"Strengthen individual dengue prevention through approved vaccines in target populations according to national guidelines.":     ResponsePreventive,
		"Coordinate efforts with the water, sanitation, education and public-utility sectors for sustainable preventive actions.":       ResponseCoordination,
		"Strengthen institutional coordination to ensure continuity of control actions and facilitate entry to properties.":             ResponseCoordination,
		"Strengthen the sustainability of the dengue control program through continuous investment, alliances and resource management.": ResponseCoordination,
		"Use meteorological data and early-warning models to anticipate conditions favorable to the vector.":                            ResponseMonitoring,
		"Use innovative technologies for focused vector monitoring and control, such as drones, remote sensors or smart traps.":         ResponseMonitoring,
		"Monitor weather conditions and manage runoff or water accumulations that favor breeding sites.":                               ResponseMonitoring,
		"Implement vector control strategies based on biotechnology, such as Wolbachia releases or the sterile insect technique.":       ResponseMonitoring,
		"Implement programs for timely diagnosis, adequate treatment and follow-up of dengue patients.":                                 ResponseMonitoring,
	}
}
