package config

// Options are the render switches set on the command line or by a tool
// call.
type Options struct {
	Resample   bool   // filter sprites when scaling and rotating
	Bitonal    bool   // black on white, ignoring resource colours and the background image
	Debug      bool   // outline every registered clash box
	Grid       bool   // grid lines at every tenth map unit
	Legend     bool   // class legend in the top-right corner
	RealThrust bool   // one forward course leg with headings in degrees
	Wallpaper  bool   // tile the background instead of stretching it
	ImageDir   string // directory sprite and background names are relative to
	Output     string // output file; the extension selects the format
}
