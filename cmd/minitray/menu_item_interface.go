package main

import "github.com/energye/systray"

// MenuItem is an interface for menu items that can be implemented by both
// real systray menu items and mock menu items for testing.
type MenuItem interface {
	SetTitle(string)
	SetTooltip(string)
	Click(func())
}

// RealMenuItem wraps a real systray.MenuItem to implement our MenuItem interface.
type RealMenuItem struct {
	*systray.MenuItem
}

// Ensure RealMenuItem implements MenuItem interface.
var _ MenuItem = (*RealMenuItem)(nil)

// SetTitle sets the menu item title.
func (r *RealMenuItem) SetTitle(title string) {
	r.MenuItem.SetTitle(title)
}

// SetTooltip sets the menu item tooltip.
func (r *RealMenuItem) SetTooltip(tooltip string) {
	r.MenuItem.SetTooltip(tooltip)
}

// Click sets the click handler.
func (r *RealMenuItem) Click(handler func()) {
	r.MenuItem.Click(handler)
}

// MockMenuItem implements MenuItem for testing without calling systray functions.
type MockMenuItem struct {
	title        string
	tooltip      string
	clickHandler func()
}

// Ensure MockMenuItem implements MenuItem interface.
var _ MenuItem = (*MockMenuItem)(nil)

// SetTitle sets the title.
func (m *MockMenuItem) SetTitle(title string) {
	m.title = title
}

// SetTooltip sets the tooltip.
func (m *MockMenuItem) SetTooltip(tooltip string) {
	m.tooltip = tooltip
}

// Click sets the click handler.
func (m *MockMenuItem) Click(handler func()) {
	m.clickHandler = handler
}

// click fires the registered handler, simulating a user click.
func (m *MockMenuItem) click() {
	if m.clickHandler != nil {
		m.clickHandler()
	}
}
