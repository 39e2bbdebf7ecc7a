package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersMG struct {
	Title         string             `yaml:"Title"`
	Nx            int                `yaml:"Nx"`
	Ny            int                `yaml:"Ny"`
	BCs           map[string]string  `yaml:"BCs"` // Key is edge name (xlo, xhi, ylo, yhi), value is BC type
	BCValues      map[string]float64 `yaml:"BCValues"`
	Nsmooth       int                `yaml:"Nsmooth"`
	NsmoothBottom int                `yaml:"NsmoothBottom"`
	MinCoarse     int                `yaml:"MinCoarse"`
	Rtol          float64            `yaml:"Rtol"`
	MaxCycles     int                `yaml:"MaxCycles"`
}

func (ip *InputParametersMG) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersMG) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Grid Size\n", ip.Nx, ip.Ny)
	fmt.Printf("[%d]\t\t\t= Nsmooth\n", ip.Nsmooth)
	fmt.Printf("[%d]\t\t\t= NsmoothBottom\n", ip.NsmoothBottom)
	fmt.Printf("[%d]\t\t\t= MinCoarse\n", ip.MinCoarse)
	fmt.Printf("%8.2e\t\t= Rtol\n", ip.Rtol)
	fmt.Printf("[%d]\t\t\t= MaxCycles\n", ip.MaxCycles)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
