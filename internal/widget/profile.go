package widget

import (
	"fmt"

	"github.com/san-kum/simview/internal/config"
	"github.com/san-kum/simview/internal/ui"
)

// valueProp maps a control kind to the property its profile value targets.
func valueProp(k ui.Kind) string {
	switch k {
	case ui.KindCheckbox:
		return "checked"
	case ui.KindRange:
		return "value"
	case ui.KindSelect:
		return "index"
	}
	return "text"
}

// ApplyProfile pushes a profile's control values onto the panel through
// the option mechanism, so unknown ids and wrong-typed values fail the
// same way misconfigured code does.
func ApplyProfile(p *Panel, prof *config.Profile) error {
	for id, v := range prof.Controls {
		el := p.ElementByID(id)
		if el == nil {
			return fmt.Errorf("%w: profile control %q", ui.ErrNoSuchElement, id)
		}
		tgt, ok := el.(ui.Target)
		if !ok {
			return fmt.Errorf("%w: %q is not configurable", ui.ErrUnknownOption, id)
		}
		if err := ui.SetOptions(tgt, ui.Options{valueProp(el.Kind()): v}); err != nil {
			return err
		}
	}
	return nil
}

// CollectProfile snapshots the panel's current control values.
func CollectProfile(p *Panel, name string) *config.Profile {
	prof := config.DefaultProfile()
	prof.Name = name
	prof.Controls = make(map[string]any)
	for _, el := range p.Elements() {
		if el.Kind() == ui.KindLabel {
			continue
		}
		prof.Controls[el.ID()] = el.Value()
	}
	return prof
}
