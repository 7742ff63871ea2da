package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title            string     `yaml:"Title"`
	NX               int        `yaml:"NX"`
	DX               float64    `yaml:"DX"`
	DT               float64    `yaml:"DT"`
	FinalTime        float64    `yaml:"FinalTime"`
	GasConstant      float64    `yaml:"GasConstant"` // J/(mol.K)
	MolarMass        float64    `yaml:"MolarMass"`   // kg/mol
	PInit            float64    `yaml:"PInit"`       // Pa
	TInit            float64    `yaml:"TInit"`       // K
	SnapshotInterval float64    `yaml:"SnapshotInterval"`
	SnapshotStride   int        `yaml:"SnapshotStride"` // 0 selects NX/1000, at least 1
	PrintInterval    int        `yaml:"PrintInterval"`
	Piston           PistonSpec `yaml:"Piston"`
}

// PistonSpec is the piecewise constant piston acceleration program, one
// period of segments.
type PistonSpec struct {
	Period   float64       `yaml:"Period"`
	Segments []SegmentSpec `yaml:"Segments"`
}

type SegmentSpec struct {
	Start float64 `yaml:"Start"`
	End   float64 `yaml:"End"`
	Value float64 `yaml:"Value"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8d\t\t= NX\n", ip.NX)
	fmt.Printf("%8.5f\t\t= DX\n", ip.DX)
	fmt.Printf("%v\t\t= DT\n", ip.DT)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= GasConstant\n", ip.GasConstant)
	fmt.Printf("%8.5f\t\t= MolarMass\n", ip.MolarMass)
	fmt.Printf("%8.1f\t\t= PInit\n", ip.PInit)
	fmt.Printf("%8.3f\t\t= TInit\n", ip.TInit)
	fmt.Printf("%8.5f\t\t= SnapshotInterval\n", ip.SnapshotInterval)
	fmt.Printf("%8.5f\t\t= Piston.Period\n", ip.Piston.Period)
	for i, sg := range ip.Piston.Segments {
		fmt.Printf("Piston.Segments[%d] = [%8.3f, %8.3f) -> %8.3f\n",
			i, sg.Start, sg.End, sg.Value)
	}
}
