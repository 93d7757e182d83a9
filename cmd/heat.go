/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/quantitativebiker/hex-fdm/FD2D"
	"github.com/quantitativebiker/hex-fdm/InputParameters"
	"github.com/quantitativebiker/hex-fdm/model_problems/Heat2D"
)

type ModelHeat struct {
	N          int
	Mu, Dt     float64
	NSteps     int
	MeshType   string
	ICFile     string
	CPUProfile bool
}

// HeatCmd represents the heat command
var HeatCmd = &cobra.Command{
	Use:   "heat",
	Short: "Transient heat equation on rectangular and hexagonal meshes",
	Long: `Runs the backward Euler heat equation solver on one or both of the fixed
discretizations and reports the max error against the analytic solution`,
	Run: func(cmd *cobra.Command, args []string) {
		mh := &ModelHeat{}
		mh.N, _ = cmd.Flags().GetInt("n")
		mh.Mu, _ = cmd.Flags().GetFloat64("mu")
		mh.Dt, _ = cmd.Flags().GetFloat64("dt")
		mh.NSteps, _ = cmd.Flags().GetInt("steps")
		mh.MeshType, _ = cmd.Flags().GetString("mesh")
		mh.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mh.CPUProfile, _ = cmd.Flags().GetBool("cpuprofile")
		if len(mh.ICFile) != 0 {
			processInput(mh)
		}
		RunHeat(mh)
	},
}

func processInput(mh *ModelHeat) {
	var (
		err  error
		data []byte
	)
	if data, err = ioutil.ReadFile(mh.ICFile); err != nil {
		panic(err)
	}
	hp := &InputParameters.HeatParameters{}
	if err = hp.Parse(data); err != nil {
		panic(err)
	}
	hp.Print()
	mh.N = hp.N
	mh.Mu = hp.Diffusivity
	mh.Dt = hp.Dt
	mh.NSteps = hp.NSteps
	mh.MeshType = hp.MeshType
}

func init() {
	rootCmd.AddCommand(HeatCmd)
	HeatCmd.Flags().IntP("n", "n", 8, "nodes per side, even and > 4")
	HeatCmd.Flags().Float64("mu", 0.01, "diffusion coefficient")
	HeatCmd.Flags().Float64("dt", 0.05, "time step")
	HeatCmd.Flags().IntP("steps", "s", 100, "number of time steps")
	HeatCmd.Flags().StringP("mesh", "m", "both", "mesh type to run: rect, hex or both")
	HeatCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with input parameters:\n\t- N\n\t- Diffusivity\n\t- Dt\n\t- NSteps\n\t- MeshType")
	HeatCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
}

func RunHeat(mh *ModelHeat) {
	var (
		types []FD2D.MeshType
		exact = Heat2D.CosineDecay(mh.Mu)
	)
	if mh.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	switch mh.MeshType {
	case "both", "":
		types = []FD2D.MeshType{FD2D.RECTANGULAR, FD2D.HEXAGONAL}
	default:
		types = []FD2D.MeshType{FD2D.NewMeshType(mh.MeshType)}
	}
	for _, mt := range types {
		c, err := Heat2D.NewHeat(mt, mh.N, mh.Mu, mh.Dt, exact)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = c.Run(mh.NSteps); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("%s mesh final max error vs exact: %8.3e\n\n", mt.Print(), c.MaxError())
	}
}
