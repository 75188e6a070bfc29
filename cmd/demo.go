package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chatdeck/internal/demo"
	"chatdeck/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of Chatdeck",
	Long: `Run scripted scenarios against the real app model and turn the result
into a recording: a VHS tape for rendering a gif, or an asciinema cast.`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range scenarios.All() {
			fmt.Printf("%-10s %s (%d steps)\n", s.Name, s.Description, len(s.Steps))
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the captured frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoGenerateCmd = &cobra.Command{
	Use:   "generate <scenario>",
	Short: "Write a VHS tape replaying the scenario's input",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoGenerate,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Write an asciinema cast of the captured frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoGenerateCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 120, "Terminal width")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 40, "Terminal height")
	}
	// generate replays the input script and never executes frames, so the
	// capture flag only applies to the frame-producing subcommands
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture a frame after every step")
	}

	demoCmd.AddCommand(demoListCmd, demoRunCmd, demoGenerateCmd, demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'chatdeck demo list' to see available scenarios", name)
	}

	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return scenario, nil
}

// outputPath resolves the --output flag, defaulting to <scenario>.<ext>
func outputPath(scenarioName, ext string) string {
	if demoOutput != "" {
		return demoOutput
	}
	return scenarioName + "." + ext
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	frames, err := demo.NewExecutor(execCfg).Run(scenario)
	if err != nil {
		return nil, fmt.Errorf("error running scenario: %w", err)
	}
	return frames, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}

	for i, f := range frames {
		annotation := ""
		if f.Annotation != "" {
			annotation = " " + f.Annotation
		}
		fmt.Printf("--- frame %d/%d (step %d, +%v)%s ---\n", i+1, len(frames), f.StepIndex, f.Delay, annotation)
		fmt.Println(f.Content)
	}
	return nil
}

func runDemoGenerate(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	tapeFile := outputPath(scenario.Name, "tape")
	f, err := os.Create(tapeFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	vhsCfg := demo.DefaultVHSConfig()
	vhsCfg.Output = strings.TrimSuffix(tapeFile, ".tape") + ".gif"
	vhsCfg.Width = scenario.Width
	vhsCfg.Height = scenario.Height

	if err := demo.GenerateVHSTape(f, scenario, vhsCfg); err != nil {
		return fmt.Errorf("error generating VHS tape: %w", err)
	}

	fmt.Printf("Wrote %s; render with: vhs %s\n", tapeFile, tapeFile)
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}

	castFile := outputPath(scenario.Name, "cast")
	f, err := os.Create(castFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Printf("Wrote %s (%d frames); play with: asciinema play %s\n", castFile, len(frames), castFile)
	return nil
}
