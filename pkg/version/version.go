package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores injetados por ldflags (-X). Vazios ou "0.0.0-dev" são completados pelo build info.
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

const devVersion = "0.0.0-dev"

// releaseURL é o endpoint da última release publicada.
const releaseURL = "https://api.github.com/repos/diillson/entregas-dashboard-go/releases/latest"

// Info descreve o binário que gerou um relatório.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

// Current devolve a versão do binário em execução.
func Current() Info {
	return Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// String: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)", ou "1.2.3 (development)" sem VCS.
func (i Info) String() string {
	ver := i.Version
	if ver == "" {
		ver = devVersion
	}
	switch {
	case i.Commit == "" && i.BuildTime == "":
		return ver + " (development)"
	case i.BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, i.Commit)
	case i.Commit == "":
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, i.BuildTime)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, i.Commit, i.BuildTime)
	}
}

// FormatVersion é a versão formatada exibida no banner, no --version e nos relatórios.
func FormatVersion() string {
	return Current().String()
}

// withBuildSettings completa base com as chaves vcs.* gravadas pelo toolchain.
// Uma versão vinda de ldflags nunca é sobrescrita.
func withBuildSettings(base Info, settings []debug.BuildSetting) Info {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if base.Commit == "" && len(vcs["vcs.revision"]) >= 7 {
		base.Commit = vcs["vcs.revision"][:7]
	}
	if base.BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			base.BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
	if base.Version != "" && base.Version != devVersion {
		return base
	}
	if tag := strings.TrimPrefix(vcs["vcs.tag"], "v"); tag != "" {
		base.Version = tag
		if strings.EqualFold(vcs["vcs.modified"], "true") {
			base.Version += "-dirty"
		}
	}
	return base
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}
	info := withBuildSettings(Current(), bi.Settings)
	Version, Commit, BuildTime = info.Version, info.Commit, info.BuildTime
}

// --- Release check ---

// LatestRelease consulta a tag da última release em url (sem o prefixo "v").
func LatestRelease(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release check returned %s", resp.Status)
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("error decoding release: %w", err)
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// IsNewer compara versões "maior.menor.patch" numericamente; sufixos ("-dirty", "-rc1") são ignorados.
func IsNewer(latest, current string) bool {
	l, c := versionParts(latest), versionParts(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var parts [3]int
	core, _, _ := strings.Cut(strings.TrimPrefix(v, "v"), "-")
	for i, p := range strings.SplitN(core, ".", 3) {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}

// CheckLatestVersion avisa quando há uma release mais nova que currentVersion. Falhas são silenciosas.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	latest, err := LatestRelease(ctx, http.DefaultClient, releaseURL)
	if err != nil || !IsNewer(latest, currentVersion) {
		return
	}
	pterm.Warning.Printfln("A new version of Entregas Dashboard is available: %s", latest)
	pterm.Info.Println("Please update using: go install github.com/diillson/entregas-dashboard-go/cmd/entregas-dashboard@latest")
}
