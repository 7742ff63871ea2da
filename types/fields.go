package types

import "fmt"

type FieldFlag uint8

const (
	F_Rho FieldFlag = iota
	F_Vel
	F_Pres
)

var FieldNameMap = map[string]FieldFlag{
	"rho":      F_Rho,
	"density":  F_Rho,
	"vel":      F_Vel,
	"velocity": F_Vel,
	"u":        F_Vel,
	"pres":     F_Pres,
	"pressure": F_Pres,
	"p":        F_Pres,
}

func ParseField(name string) (ff FieldFlag, err error) {
	ff, ok := FieldNameMap[name]
	if !ok {
		err = fmt.Errorf("unknown field %q, want one of rho, vel, pres", name)
	}
	return
}

func (ff FieldFlag) String() string {
	switch ff {
	case F_Rho:
		return "rho"
	case F_Vel:
		return "vel"
	case F_Pres:
		return "pres"
	}
	return "unknown"
}

// Label is the plot axis annotation for the field.
func (ff FieldFlag) Label() string {
	switch ff {
	case F_Rho:
		return "density (kg/m^3)"
	case F_Vel:
		return "velocity (m/s)"
	case F_Pres:
		return "pressure (Pa)"
	}
	return "unknown"
}
