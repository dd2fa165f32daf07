// Package menu lists the key bindings for help screens.
package menu

import (
	"fmt"
	"strings"

	engineinput "glueboy/pkg/engine/input"
)

// BindingMenuItem represents one action and the keys bound to it.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	byAction := engineinput.GetBindingsByAction()
	codes := byAction[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// helpActions is the order actions are listed in
var helpActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionSelectEmpty,
	engineinput.ActionSelectBox,
	engineinput.ActionScreenshot,
	engineinput.ActionMapDump,
	engineinput.ActionQuit,
}

// GetMenuItems returns one item per bound action.
func GetMenuItems() []*BindingMenuItem {
	items := make([]*BindingMenuItem, len(helpActions))
	for i, action := range helpActions {
		items[i] = &BindingMenuItem{Action: action}
	}
	return items
}

// Labels returns the label of every item
func Labels() []string {
	items := GetMenuItems()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.GetLabel()
	}
	return labels
}
