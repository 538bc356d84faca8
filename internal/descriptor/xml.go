package descriptor

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"
)

// xmlParser reads the classic daemon descriptor:
//
//	<daemon>
//	  <id>demo</id>
//	  <mainClass>com.example.Main</mainClass>
//	  <classpath>
//	    <dependency><relativePath>lib/a.so</relativePath></dependency>
//	    <directory><relativePath>etc</relativePath></directory>
//	  </classpath>
//	  <commandLineArguments>
//	    <commandLineArgument>--foo</commandLineArgument>
//	  </commandLineArguments>
//	  <jvmSettings>
//	    <maxMemorySize>512m</maxMemorySize>
//	    <systemProperties><systemProperty>a=1</systemProperty></systemProperties>
//	  </jvmSettings>
//	</daemon>
type xmlParser struct{}

func (xmlParser) Format() string { return "xml" }

type xmlDaemon struct {
	XMLName     xml.Name        `xml:"daemon"`
	ID          string          `xml:"id"`
	MainClass   string          `xml:"mainClass"`
	Classpath   xmlClasspath    `xml:"classpath"`
	Arguments   *xmlArguments   `xml:"commandLineArguments"`
	JVMSettings *xmlJVMSettings `xml:"jvmSettings"`
}

type xmlArguments struct {
	Values []string `xml:"commandLineArgument"`
}

type xmlJVMSettings struct {
	MaxMemorySize    string         `xml:"maxMemorySize"`
	MaxProcs         int            `xml:"maxProcs"`
	SystemProperties *xmlProperties `xml:"systemProperties"`
}

type xmlProperties struct {
	Values []string `xml:"systemProperty"`
}

// xmlClasspath keeps dependencies and directories in document order,
// whether or not they are grouped under <dependencies>/<directories>.
type xmlClasspath struct {
	Elements []ClasspathElement
}

func (c *xmlClasspath) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "dependencies", "directories":
				// descend; children are handled by this loop
			case "dependency", "directory":
				var el struct {
					RelativePath string `xml:"relativePath"`
				}
				if err := d.DecodeElement(&el, &t); err != nil {
					return err
				}
				c.Elements = append(c.Elements, ClasspathElement{
					Kind:         Kind(t.Name.Local),
					RelativePath: strings.TrimSpace(el.RelativePath),
				})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (xmlParser) Parse(_ string, data []byte) (*Descriptor, error) {
	var doc xmlDaemon
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	d := &Descriptor{
		ID:         strings.TrimSpace(doc.ID),
		EntryPoint: strings.TrimSpace(doc.MainClass),
		Classpath:  doc.Classpath.Elements,
	}
	if doc.Arguments != nil {
		d.Arguments = append([]string{}, doc.Arguments.Values...)
	}
	if s := doc.JVMSettings; s != nil {
		d.Settings = &Settings{
			MemoryLimit: jvmSizeToQuantity(strings.TrimSpace(s.MaxMemorySize)),
			MaxProcs:    s.MaxProcs,
		}
		if s.SystemProperties != nil {
			d.Settings.Properties = s.SystemProperties.Values
		}
	}
	return d, nil
}

var jvmSize = regexp.MustCompile(`^(\d+)([kKmMgGtT])$`)

// jvmSizeToQuantity rewrites JVM-style sizes ("512m") to binary
// quantities ("512Mi"). Anything else is returned unchanged.
func jvmSizeToQuantity(s string) string {
	m := jvmSize.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[1] + strings.ToUpper(m[2]) + "i"
}
