package model_test

import (
	"reflect"
	"testing"

	"github.com/yeyanbo/fhirpath-go/model"
	"github.com/yeyanbo/fhirpath-go/model/r4"
	"github.com/yeyanbo/fhirpath-go/utils/ptr"
)

func TestMemSizeR4(t *testing.T) {
	tests := []struct {
		name    string
		element model.Element
		want    int
	}{
		{
			name:    "empty patient",
			element: r4.Patient{},
			want:    int(reflect.TypeOf(r4.Patient{}).Size()),
		},
		{
			name:    "patient with id",
			element: r4.Patient{Id: &r4.Id{Value: ptr.To("1")}},
			want:    int(reflect.TypeOf(r4.Patient{}).Size()+reflect.TypeOf(r4.Id{}).Size()+reflect.TypeOf("").Size()) + len("1"),
		},
		{
			name: "patient with extensions",
			element: &r4.Patient{
				Extension: []r4.Extension{
					{
						Url: "http://example.com",
					},
				},
			},
			want: int(reflect.TypeOf(r4.Patient{}).Size()+reflect.TypeOf(r4.Extension{}).Size()) +
				// Extension.url is not a pointer, its string header is part of the struct
				len("http://example.com"),
		},
		{
			name: "patient with extensions sliced",
			element: &r4.Patient{
				Extension: []r4.Extension{
					{
						Url: "http://example.com",
					},
					{},
				}[:1],
			},
			want: int(reflect.TypeOf(r4.Patient{}).Size()+
				// unused capacity is counted as well
				2*reflect.TypeOf(r4.Extension{}).Size()) + len("http://example.com"),
		},
		{
			name: "patient with deceased",
			element: r4.Patient{
				Deceased: r4.Boolean{Value: ptr.To(true)},
			},
			want: int(reflect.TypeOf(r4.Patient{}).Size() +
				reflect.TypeOf(r4.Boolean{}).Size() +
				reflect.TypeOf(true).Size()),
		},
		{
			name: "patient with contact",
			element: &r4.Patient{
				Contact: []r4.PatientContact{
					{
						Name: &r4.HumanName{},
					},
				},
			},
			want: int(reflect.TypeOf(r4.Patient{}).Size() +
				reflect.TypeOf(r4.PatientContact{}).Size() +
				reflect.TypeOf(r4.HumanName{}).Size()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.element.MemSize(); got != tt.want {
				t.Errorf("MemSize() = %v, want %v, MemSize() should return the size of the element", got, tt.want)
			}
		})
	}
}
