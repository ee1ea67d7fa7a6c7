package domain

// FormValues are the side-panel form fields.
type FormValues struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Color string `json:"color"`
}

// Visual converts the form into a card appearance.
func (f FormValues) Visual() Visual {
	return Visual{Fill: f.Color, Name: f.Name, Role: f.Role}
}

// FormFromVisual pre-fills a form from a node's current appearance.
func FormFromVisual(v Visual) FormValues {
	return FormValues{Name: v.Name, Role: v.Role, Color: v.Fill}
}

// Panel is the state of the side panel hosting the add and edit form.
type Panel struct {
	Open   bool       `json:"open"`
	Width  float64    `json:"width"`
	Mode   Mode       `json:"mode"`
	NodeID string     `json:"nodeId,omitempty"`
	Form   FormValues `json:"form"`
}

// ButtonPlacement positions the per-node action buttons in absolute page coordinates.
type ButtonPlacement struct {
	NodeID  string  `json:"nodeId"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Opacity float64 `json:"opacity"`
}
