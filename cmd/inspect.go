package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/scorepoint/file"
	"github.com/jsphweid/scorepoint/music"
	"github.com/jsphweid/scorepoint/timeline"
	"github.com/jsphweid/scorepoint/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score.json>",
	Short: "Inspects a score layout",
	Long:  `Inspects a score layout`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	systems, err := file.ReadScore(path)
	if err != nil {
		panic("Could not read score because: " + err.Error())
	}

	for si, sys := range systems {
		if sys == nil {
			fmt.Printf("system %v: null\n", si)
			continue
		}
		fmt.Printf("system %v:\n", si)
		if box, ok := sys.Box(); ok {
			fmt.Printf("  box: x=%v y=%v w=%v h=%v\n", box.X, box.Y, box.W, box.H)
		} else {
			fmt.Println("  box: incomplete")
		}
		for pi := range sys.Parts {
			part := &sys.Parts[pi]
			clef, _ := part.Stave.Clef()
			fmt.Printf("  staff %v: clef=%v center=%v spacing=%v\n", pi, clef, part.Stave.CenterY, part.Stave.Spacing)
			if name, ok := part.Stave.KeySignature(); ok {
				printSignature(name)
			}
			for vi := range part.Voices {
				for _, e := range timeline.Build(&part.Voices[vi]) {
					fmt.Printf("    voice %v beat %-6v %v %v\n", vi, e.Beat.RatString(), e.Event.Kind, e.Event.Keys)
				}
			}
		}
	}
}

func printSignature(name string) {
	sig, ok := music.KeyAccidentals(name)
	if !ok {
		fmt.Printf("    signature %v: unknown\n", name)
		return
	}
	fmt.Printf("    signature %v:", name)
	for _, letter := range util.GetKeys(sig) {
		fmt.Printf(" %v%v", letter, sig[letter])
	}
	fmt.Println()
}
