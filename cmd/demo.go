package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/scorepoint/constants"
	"github.com/jsphweid/scorepoint/db"
	"github.com/jsphweid/scorepoint/file"
	"github.com/jsphweid/scorepoint/geom"
	scoremidi "github.com/jsphweid/scorepoint/midi"
	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/pointer"
	"github.com/jsphweid/scorepoint/sample"
	"github.com/jsphweid/scorepoint/score"
)

var demoScorePath string
var demoSessionPath string
var demoAudition bool

func init() {
	demoCmd.Flags().StringVar(&demoScorePath, "score", "", "score layout JSON, blank for the built-in sample")
	demoCmd.Flags().StringVar(&demoSessionPath, "out", "", "write the clicked notes to this midi file on quit")
	demoCmd.Flags().BoolVar(&demoAudition, "audition", false, "play clicked notes on the first midi out port")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive terminal demo",
	Long:  `Draws the score in the terminal and resolves mouse clicks against it.`,
	Run: func(cmd *cobra.Command, args []string) {
		demo()
	},
}

func demo() {
	systems := sample.FlatScore()
	if demoScorePath != "" {
		loaded, err := file.ReadScore(demoScorePath)
		if err != nil {
			panic("Could not read score because: " + err.Error())
		}
		systems = loaded
	}

	var play func(key uint8)
	if demoAudition {
		defer gomidi.CloseDriver()
		if out, err := gomidi.OutPort(0); err == nil {
			if send, err := gomidi.SendTo(out); err == nil {
				play = func(key uint8) {
					send(gomidi.NoteOn(0, key, 96))
					time.AfterFunc(250*time.Millisecond, func() {
						send(gomidi.NoteOff(0, key))
					})
				}
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic("Could not create screen because: " + err.Error())
	}
	if err := screen.Init(); err != nil {
		panic("Could not init screen because: " + err.Error())
	}
	screen.EnableMouse()
	defer screen.Fini()

	session := db.New(constants.SessionLimit)
	status := "click a note (q quits)"

	redraw := func() {
		screen.Clear()
		drawSystems(screen, systems)
		drawStatus(screen, status)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				finishDemo(screen, session)
				return
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			resolved := pointer.Resolve(systems, geom.Point{X: float64(x), Y: float64(y)}, nil, true)
			session.Put(resolved)
			status = describe(resolved)
			if play != nil && resolved.Pitch != nil {
				if key, ok := scoremidi.Key(*resolved.Pitch); ok {
					play(key)
				}
			}
			redraw()
		}
	}
}

// finishDemo tears the screen down before any final output so the summary
// lands on the normal terminal.
func finishDemo(screen tcell.Screen, session *db.Store) {
	screen.Fini()
	if demoSessionPath == "" {
		return
	}
	wrote, err := scoremidi.WriteSession(demoSessionPath, session.Session())
	if err != nil {
		panic("Could not write session because: " + err.Error())
	}
	fmt.Printf("wrote %v notes to %v\n", wrote, demoSessionPath)
}

func describe(ev model.ScoreMouseEvent) string {
	if ev.SystemIndex == nil {
		return "nowhere near the score"
	}
	if ev.StaveIndex == nil {
		return fmt.Sprintf("measure %v, empty system", *ev.SystemIndex)
	}
	desc := fmt.Sprintf("measure %v staff %v line %v", *ev.SystemIndex, *ev.StaveIndex, *ev.StaffLine)
	if ev.Pitch == nil {
		return desc
	}
	desc += " -> " + ev.Pitch.String()
	if key, ok := scoremidi.Key(*ev.Pitch); ok {
		desc += fmt.Sprintf(" (midi %v)", key)
	}
	return desc
}

func drawSystems(screen tcell.Screen, systems []*score.System) {
	style := tcell.StyleDefault
	for _, sys := range systems {
		if sys == nil {
			continue
		}
		box, ok := sys.Box()
		if !ok {
			continue
		}
		for pi := range sys.Parts {
			st := &sys.Parts[pi].Stave
			drawStave(screen, st, box, style)
			for vi := range sys.Parts[pi].Voices {
				events := sys.Parts[pi].Voices[vi].Events
				for ei := range events {
					drawEvent(screen, &events[ei], style)
				}
			}
		}
	}
}

func drawStave(screen tcell.Screen, st *score.Stave, box geom.Rect, style tcell.Style) {
	half := st.Lines / 2
	top := int(st.CenterY - float64(half)*st.Spacing)
	bottom := int(st.CenterY + float64(half)*st.Spacing)
	for k := -half; k <= half; k++ {
		y := int(st.CenterY + float64(k)*st.Spacing)
		for x := int(box.X); x <= int(box.Right()); x++ {
			screen.SetContent(x, y, tcell.RuneHLine, nil, style)
		}
	}
	for y := top; y <= bottom; y++ {
		screen.SetContent(int(box.X), y, tcell.RuneVLine, nil, style)
		screen.SetContent(int(box.Right()), y, tcell.RuneVLine, nil, style)
	}
}

func drawEvent(screen tcell.Screen, ev *score.Tickable, style tcell.Style) {
	if ev.Box == nil || !ev.IsNote() {
		return
	}
	x := int(ev.Box.X + ev.Box.W/2)
	y := int(ev.Box.Y + ev.Box.H/2)
	screen.SetContent(x, y, '●', nil, style.Bold(true))
}

func drawStatus(screen tcell.Screen, status string) {
	width, height := screen.Size()
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
}
