package version

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
)

// VERSION has the current software version (set in the build process)
var (
	VERSION    string
	buildTime  string
	gitVersion string
)

func init() {
	if len(gitVersion) > 0 {
		VERSION = VERSION + "/" + gitVersion
	}
	if len(VERSION) == 0 {
		VERSION = "dev-snapshot"
	}
}

// Cmd prints version and build information.
type Cmd struct{}

func (cmd *Cmd) Run(kctx *kong.Context) error {
	_, err := fmt.Fprintf(kctx.Stdout, "%s %s\n", kctx.Model.Name, Version())
	return err
}

var v = sync.OnceValue(func() string {
	extra := []string{}
	if len(buildTime) > 0 {
		extra = append(extra, buildTime)
	}
	extra = append(extra, runtime.Version())
	return fmt.Sprintf("%s (%s)", VERSION, strings.Join(extra, ", "))
})

func Version() string {
	return v()
}

// RegisterMetric adds a <name>_build_info gauge to reg.
func RegisterMetric(name string, reg prometheus.Registerer) {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name + "_build_info",
		Help: "Build information, value is always 1",
	}, []string{"version", "buildtime", "goversion"})
	reg.MustRegister(info)

	info.WithLabelValues(VERSION, buildTime, runtime.Version()).Set(1)
}
