package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/booter/internal/booter"
	"github.com/opmodel/booter/internal/config"
	"github.com/opmodel/booter/internal/descriptor"
	"github.com/opmodel/booter/internal/output"
)

// Description is what booterctl describe reports.
type Description struct {
	Environment []config.ResolvedValue `json:"environment" yaml:"environment"`
	Location    string                 `json:"location" yaml:"location"`
	Format      string                 `json:"format" yaml:"format"`
	Descriptor  *descriptor.Descriptor `json:"descriptor" yaml:"descriptor"`
	Classpath   []string               `json:"classpath" yaml:"classpath"`
}

// NewDescribeCmd creates the describe command.
func NewDescribeCmd(cfg *GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "describe",
		Short: "Show the resolved launch configuration",
		Long: `Show what run would do without doing it: the resolved inputs and where
each came from, the descriptor location and format, the entry point, the
pre-set arguments, the properties and the resolved classpath.

Settings are not applied and nothing on the classpath is opened.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format := output.ParseOutputFormat(outputFlag)
			if !format.IsValid() {
				return fmt.Errorf("invalid output format %q (valid: %s)",
					format.String(), strings.Join(output.ValidFormats(), ", "))
			}

			desc, err := describe(cfg)
			if err != nil {
				return err
			}
			return writeDescription(c.OutOrStdout(), desc, format)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

func describe(cfg *GlobalConfig) (*Description, error) {
	res, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	b := booter.New(res.Environment, booter.WithLogger(output.Logger()))
	d, err := b.LoadConfig()
	if err != nil {
		return nil, err
	}
	cp, err := b.Classpath()
	if err != nil {
		return nil, err
	}

	return &Description{
		Environment: res.Values,
		Location:    d.Location,
		Format:      d.Format,
		Descriptor:  d,
		Classpath:   cp,
	}, nil
}

func writeDescription(w io.Writer, desc *Description, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderTable(desc))
		return err
	}
}

func renderTable(desc *Description) string {
	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	line(output.StyleHeading.Render("Environment"))
	for _, v := range desc.Environment {
		line("  " + output.FormatField(v.Key, v.Value, string(v.Source)))
	}

	d := desc.Descriptor
	line("")
	line(output.StyleHeading.Render("Descriptor"))
	line("  " + output.FormatField("location", desc.Location, ""))
	line("  " + output.FormatField("format", desc.Format, ""))
	if d.ID != "" {
		line("  " + output.FormatField("id", d.ID, ""))
	}
	line("  " + output.FormatField("entryPoint", d.EntryPoint, ""))
	if len(d.Arguments) > 0 {
		line("  " + output.FormatField("arguments", strings.Join(d.Arguments, " "), ""))
	}
	if s := d.Settings; s != nil {
		if s.MemoryLimit != "" {
			line("  " + output.FormatField("memoryLimit", s.MemoryLimit, ""))
		}
		if s.MaxProcs > 0 {
			line("  " + output.FormatField("maxProcs", fmt.Sprint(s.MaxProcs), ""))
		}
	}

	if props := d.Properties(); len(props) > 0 {
		line("")
		line(output.StyleHeading.Render("Properties"))
		for i, p := range props {
			line(output.FormatIndexed(i, p))
		}
	}

	line("")
	line(output.StyleHeading.Render("Classpath"))
	if len(desc.Classpath) == 0 {
		line(output.StyleDim.Render("  (empty)"))
	}
	for i, p := range desc.Classpath {
		line(output.FormatIndexed(i, output.StyleNoun.Render(p)))
	}

	return sb.String()
}
