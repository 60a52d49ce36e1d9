package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/scorepoint/file"
	"github.com/jsphweid/scorepoint/geom"
	"github.com/jsphweid/scorepoint/pointer"
)

var resolveNoAccidentals bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveNoAccidentals, "no-accidentals", false, "skip key signature and accidental derivation")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <score.json> <x> <y>",
	Short: "Resolves one click against a score layout",
	Long:  `Resolves one click against a score layout`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			panic("Need a score path plus x and y...")
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			panic(err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			panic(err)
		}
		resolveOne(args[0], x, y)
	},
}

func resolveOne(path string, x, y float64) {
	systems, err := file.ReadScore(path)
	if err != nil {
		panic("Could not read score because: " + err.Error())
	}

	ev := pointer.Resolve(systems, geom.Point{X: x, Y: y}, nil, !resolveNoAccidentals)
	out, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
}
