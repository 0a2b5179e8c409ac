package viewstate

// MobileMenu is the collapsible navigation drawer. Every close path lands in
// the same closed state, so an open/close round trip is lossless.
type MobileMenu struct {
	open bool
}

func (m *MobileMenu) Open()          { m.open = true }
func (m *MobileMenu) CloseBackdrop() { m.open = false }
func (m *MobileMenu) CloseButton()   { m.open = false }

// Navigate closes the menu when one of its links is followed.
func (m *MobileMenu) Navigate() { m.open = false }

func (m *MobileMenu) IsOpen() bool { return m.open }
