package buildinfo

const Graffiti = " _     _ _                 \n| | __| | |_ _ __ ___  ___ \n| |/ _` | __| '__/ _ \\/ _ \\\n|   < (_| | |_| | |  __/  __/\n|_|\\_\\__,_|\\__|_|  \\___|\\___|\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "KDTREE"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

// Version joins name, tag and build time for the command line.
func (b buildinfo) Version() string {
	if b.Time() == "" {
		return b.Name() + " " + b.Tag()
	}
	return b.Name() + " " + b.Tag() + " (" + b.Time() + ")"
}

var Info buildinfo
