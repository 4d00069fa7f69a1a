package main

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
)

// Theme holds the palette: one color tag per fill code, index 0 being
// the background. The selected theme name is the only thing persisted
// across runs.
type Theme struct {
	Name       string
	Background string
	Fills      [8]string
}

var themeDark = Theme{
	Name:       "dark",
	Background: "#000000",
	Fills: [8]string{
		"",        // empty
		"#00eeee", // I
		"#2864ff", // J
		"#ff7308", // L
		"#00e900", // S
		"#ee0000", // Z
		"#c000cc", // T
		"#dddd00", // O
	},
}

var themeLight = Theme{
	Name:       "light",
	Background: "#ffffff",
	Fills: [8]string{
		"",
		"#008888",
		"#1a3faa",
		"#b35205",
		"#009900",
		"#aa0000",
		"#800088",
		"#888800",
	},
}

func themeByName(name string) Theme {
	if name == themeLight.Name {
		return themeLight
	}

	return themeDark
}

func (t Theme) next() Theme {
	if t.Name == themeDark.Name {
		return themeLight
	}

	return themeDark
}

// renderBlock maps each fill code to the bytes written for one cell.
func renderBlock(t Theme) [8][]byte {
	var blocks [8][]byte

	blocks[0] = []byte(" ")
	for fill := 1; fill < 8; fill++ {
		blocks[fill] = []byte("[" + t.Fills[fill] + "]█[-]")
	}

	return blocks
}

func themePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return path.Join(configDir, "fallterm", "theme"), nil
}

// loadTheme returns the persisted theme, or the dark theme when none
// was saved yet.
func loadTheme() Theme {
	p, err := themePath()
	if err != nil {
		return themeDark
	}

	data, err := ioutil.ReadFile(p)
	if err != nil {
		return themeDark
	}

	return themeByName(strings.TrimSpace(string(data)))
}

func saveTheme(t Theme) error {
	p, err := themePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(path.Dir(p), 0755); err != nil {
		return err
	}

	return ioutil.WriteFile(p, []byte(t.Name+"\n"), 0644)
}
