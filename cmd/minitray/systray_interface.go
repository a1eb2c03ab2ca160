package main

import (
	"github.com/energye/systray"
)

// SystrayInterface abstracts systray operations for testing. Its icon and
// tooltip methods match tray.TrayIcon, so an implementation doubles as the
// coordinator's tray icon.
type SystrayInterface interface {
	ResetMenu()
	AddMenuItem(title, tooltip string) MenuItem
	AddSeparator()
	SetIcon(png []byte)
	SetTooltip(text string)
	Quit()
}

// RealSystray implements SystrayInterface using the actual systray library.
type RealSystray struct{}

func (*RealSystray) ResetMenu() {
	systray.ResetMenu()
}

func (*RealSystray) AddMenuItem(title, tooltip string) MenuItem {
	item := systray.AddMenuItem(title, tooltip)
	return &RealMenuItem{MenuItem: item}
}

func (*RealSystray) AddSeparator() {
	systray.AddSeparator()
}

func (*RealSystray) SetIcon(png []byte) {
	systray.SetIcon(png)
}

func (*RealSystray) SetTooltip(text string) {
	systray.SetTooltip(text)
}

func (*RealSystray) Quit() {
	systray.Quit()
}

// MockSystray implements SystrayInterface for testing.
type MockSystray struct {
	tooltip   string
	icons     [][]byte
	menuItems []*MockMenuItem
	quit      bool
}

func (m *MockSystray) ResetMenu() {
	m.menuItems = nil
}

func (m *MockSystray) AddMenuItem(title, tooltip string) MenuItem {
	item := &MockMenuItem{title: title, tooltip: tooltip}
	m.menuItems = append(m.menuItems, item)
	return item
}

func (m *MockSystray) AddSeparator() {
	m.menuItems = append(m.menuItems, &MockMenuItem{title: "---"})
}

func (m *MockSystray) SetIcon(png []byte) {
	m.icons = append(m.icons, png)
}

func (m *MockSystray) SetTooltip(text string) {
	m.tooltip = text
}

func (m *MockSystray) Quit() {
	m.quit = true
}

// item returns the first menu item with the given title, or nil.
func (m *MockSystray) item(title string) *MockMenuItem {
	for _, it := range m.menuItems {
		if it.title == title {
			return it
		}
	}
	return nil
}
