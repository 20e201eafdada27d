package classify

import "fmt"

// Labels are the fixed strings used for subsection headings and table
// columns.
type Labels struct {
	Since       string
	Category    string
	Parameters  string
	Returns     string
	Example     string
	Name        string
	Type        string
	Description string
}

// DefaultPreset is the label preset used when none is configured. Its
// output is byte-compatible with documents produced by earlier releases.
const DefaultPreset = "zh"

var presets = map[string]Labels{
	"zh": {
		Since:       "引入版本",
		Category:    "分类",
		Parameters:  "参数",
		Returns:     "返回值",
		Example:     "示例",
		Name:        "名称",
		Type:        "类型",
		Description: "描述",
	},
	"en": {
		Since:       "Since",
		Category:    "Category",
		Parameters:  "Parameters",
		Returns:     "Returns",
		Example:     "Example",
		Name:        "Name",
		Type:        "Type",
		Description: "Description",
	},
}

// Preset returns the named label preset.
func Preset(name string) (Labels, error) {
	if name == "" {
		name = DefaultPreset
	}
	l, ok := presets[name]
	if !ok {
		return Labels{}, fmt.Errorf("unknown label preset %q", name)
	}
	return l, nil
}

// PresetNames lists the known presets.
func PresetNames() []string {
	return []string{"zh", "en"}
}

// Override returns l with every non-empty field of o applied.
func (l Labels) Override(o Labels) Labels {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&l.Since, o.Since)
	set(&l.Category, o.Category)
	set(&l.Parameters, o.Parameters)
	set(&l.Returns, o.Returns)
	set(&l.Example, o.Example)
	set(&l.Name, o.Name)
	set(&l.Type, o.Type)
	set(&l.Description, o.Description)
	return l
}
