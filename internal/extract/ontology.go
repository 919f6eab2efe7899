package extract

import (
	"encoding/json"
	"fmt"

	"docflow/internal/domain"
	"docflow/internal/filter"
)

// OntologyConcept is one candidate code for an entity, with the service's
// confidence in the mapping.
type OntologyConcept struct {
	Code        string   `json:"Code"`
	Description string   `json:"Description"`
	Score       *float64 `json:"Score"`
}

// OntologyAttribute qualifies an entity (dosage, anatomy, acuity and so on).
type OntologyAttribute struct {
	Text  string   `json:"Text"`
	Score *float64 `json:"Score"`
}

// OntologyTrait is a contextual marker on an entity, e.g. NEGATION.
type OntologyTrait struct {
	Name  string   `json:"Name"`
	Score *float64 `json:"Score"`
}

// OntologyEntity is one detected entity in an inference output file,
// carrying candidate concepts for each supported vocabulary.
type OntologyEntity struct {
	Category       string              `json:"Category"`
	Type           string              `json:"Type"`
	Text           string              `json:"Text"`
	Score          *float64            `json:"Score"`
	Attributes     []OntologyAttribute `json:"Attributes"`
	Traits         []OntologyTrait     `json:"Traits"`
	ICD10Concepts  []OntologyConcept   `json:"ICD10CMConcepts"`
	RxNormConcepts []OntologyConcept   `json:"RxNormConcepts"`
	SNOMEDConcepts []OntologyConcept   `json:"SNOMEDCTConcepts"`
}

// OntologyOutput is the decoded shape of one inference output file.
type OntologyOutput struct {
	Entities []OntologyEntity `json:"Entities"`
}

// entityConcepts returns the concept list for the vocabulary being parsed.
func (e OntologyEntity) entityConcepts(kind domain.OntologyKind) []OntologyConcept {
	switch kind {
	case domain.OntologyICD10:
		return e.ICD10Concepts
	case domain.OntologyRxNorm:
		return e.RxNormConcepts
	case domain.OntologySNOMED:
		return e.SNOMEDConcepts
	}
	return nil
}

// confidentEntities decodes one output file and keeps the entities that pass
// the entity threshold and belong to the vocabulary's category.
func confidentEntities(kind domain.OntologyKind, contents []byte, t filter.Thresholds) ([]OntologyEntity, error) {
	var output OntologyOutput
	if err := json.Unmarshal(contents, &output); err != nil {
		return nil, fmt.Errorf("failed to decode %s inference output: %w", kind, err)
	}
	entities := output.Entities
	if category := kind.Category(); category != "" {
		var matched []OntologyEntity
		for _, e := range entities {
			if e.Category == category {
				matched = append(matched, e)
			}
		}
		entities = matched
	}
	return filter.Confident(entities, func(e OntologyEntity) *float64 { return e.Score }, t.Entity), nil
}

// chooseConcept picks the first concept, in service order, whose score is
// strictly above the concept threshold. Entities whose every concept falls
// below the threshold yield no code at all.
func chooseConcept(concepts []OntologyConcept, min float64) (OntologyConcept, bool) {
	passing := filter.Confident(concepts, func(c OntologyConcept) *float64 { return c.Score }, min)
	if len(passing) == 0 {
		return OntologyConcept{}, false
	}
	return passing[0], true
}

func confidentAttributes(e OntologyEntity, min float64) []string {
	kept := filter.Confident(e.Attributes, func(a OntologyAttribute) *float64 { return a.Score }, min)
	texts := make([]string, 0, len(kept))
	for _, a := range kept {
		texts = append(texts, a.Text)
	}
	return texts
}

func confidentTraits(e OntologyEntity, min float64) []string {
	kept := filter.Confident(e.Traits, func(t OntologyTrait) *float64 { return t.Score }, min)
	names := make([]string, 0, len(kept))
	for _, t := range kept {
		names = append(names, t.Name)
	}
	return names
}

// ParseConditions extracts ICD10-coded conditions from one inference output
// file. Results are not yet deduplicated across files; callers dedup by code
// after merging.
func ParseConditions(contents []byte, t filter.Thresholds) ([]domain.Condition, error) {
	entities, err := confidentEntities(domain.OntologyICD10, contents, t)
	if err != nil {
		return nil, err
	}
	var conditions []domain.Condition
	for _, e := range entities {
		concept, ok := chooseConcept(e.entityConcepts(domain.OntologyICD10), t.Concept)
		if !ok {
			continue
		}
		conditions = append(conditions, domain.Condition{
			Code:        concept.Code,
			Description: concept.Description,
			Condition:   e.Text,
			Attributes:  confidentAttributes(e, t.Attribute),
		})
	}
	return conditions, nil
}

// ParsePrescriptions extracts RxNorm-coded medications from one inference
// output file.
func ParsePrescriptions(contents []byte, t filter.Thresholds) ([]domain.Prescription, error) {
	entities, err := confidentEntities(domain.OntologyRxNorm, contents, t)
	if err != nil {
		return nil, err
	}
	var prescriptions []domain.Prescription
	for _, e := range entities {
		concept, ok := chooseConcept(e.entityConcepts(domain.OntologyRxNorm), t.Concept)
		if !ok {
			continue
		}
		prescriptions = append(prescriptions, domain.Prescription{
			Code:        concept.Code,
			Name:        e.Text,
			Description: concept.Description,
			Type:        e.Type,
			Attributes:  confidentAttributes(e, t.Attribute),
		})
	}
	return prescriptions, nil
}

// ParseDiagnoses extracts SNOMED-coded findings from one inference output
// file. SNOMED keeps every entity category, so each result carries its
// category alongside the code.
func ParseDiagnoses(contents []byte, t filter.Thresholds) ([]domain.Diagnosis, error) {
	entities, err := confidentEntities(domain.OntologySNOMED, contents, t)
	if err != nil {
		return nil, err
	}
	var diagnoses []domain.Diagnosis
	for _, e := range entities {
		concept, ok := chooseConcept(e.entityConcepts(domain.OntologySNOMED), t.Concept)
		if !ok {
			continue
		}
		diagnoses = append(diagnoses, domain.Diagnosis{
			Code:        concept.Code,
			Name:        e.Text,
			Description: concept.Description,
			Type:        e.Type,
			Category:    e.Category,
			Attributes:  confidentAttributes(e, t.Attribute),
			Traits:      confidentTraits(e, t.Trait),
		})
	}
	return diagnoses, nil
}
