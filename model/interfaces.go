// Package model defines the interfaces shared by all generated model packages.
package model

import (
	"github.com/yeyanbo/fhirpath-go/fhirpath"
)

// Element is any element in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements.
type Element interface {
	fhirpath.Element
	MemSize() int
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}
