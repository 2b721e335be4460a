package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/company/nextstart/internal/config"
	"github.com/company/nextstart/internal/detect"
	"github.com/company/nextstart/internal/execx"
	"github.com/company/nextstart/internal/scaffold"
	"github.com/company/nextstart/internal/ui"
)

// authPackages are the runtime packages for NextAuth with the Prisma adapter.
var authPackages = []string{"next-auth@beta", "@auth/prisma-adapter", "@prisma/client"}

// authDevPackages are installed as dev dependencies.
var authDevPackages = []string{"prisma"}

// NextAuth installs the authentication stack and writes its configuration.
// Unlike the shadcn setup it has no capability precondition.
type NextAuth struct {
	Runner execx.Runner
	Output *ui.Output
}

// Run executes the NextAuth setup: package install, secret generation, then
// the config, route and env writers in that order.
func (n *NextAuth) Run(ctx context.Context, root string, cfg *config.Project, st *detect.Structure) Result {
	res := Result{Name: "NextAuth"}

	if !cfg.NextAuth {
		res.State = StateSkipped
		return res
	}

	mgr := cfg.PackageManager

	if err := n.Runner.Run(ctx, root, mgr.InstallArgs(authPackages, false)...); err != nil {
		return n.fail(res, cfg, fmt.Errorf("installing auth packages: %w", err))
	}
	if err := n.Runner.Run(ctx, root, mgr.InstallArgs(authDevPackages, true)...); err != nil {
		return n.fail(res, cfg, fmt.Errorf("installing prisma: %w", err))
	}
	n.Output.Success("Installed %s", strings.Join(authPackages, " "))

	// Writes AUTH_SECRET into .env.local as a side effect; the env writer
	// below re-reads the file and appends around it.
	if err := n.Runner.Run(ctx, root, mgr.ExecArgs("auth", "secret")...); err != nil {
		return n.fail(res, cfg, fmt.Errorf("generating auth secret: %w", err))
	}

	if err := scaffold.WriteAuthConfig(root, st.UseSrcDir, st.UseTypeScript); err != nil {
		return n.fail(res, cfg, fmt.Errorf("writing auth config: %w", err))
	}
	if err := scaffold.WriteAuthRoute(root, st.UseSrcDir, st.UseTypeScript); err != nil {
		return n.fail(res, cfg, fmt.Errorf("writing auth route: %w", err))
	}

	wrote, err := scaffold.AppendEnv(root)
	if err != nil {
		return n.fail(res, cfg, fmt.Errorf("updating .env.local: %w", err))
	}
	if wrote {
		n.Output.Success("Added auth variables to .env.local")
	} else {
		n.Output.Info(".env.local already configured, leaving it alone")
	}

	res.State = StateDone
	return res
}

func (n *NextAuth) fail(res Result, cfg *config.Project, err error) Result {
	res.State = StateFailed
	res.Err = err
	install := strings.Join(cfg.PackageManager.InstallArgs(authPackages, false), " ")
	secret := strings.Join(cfg.PackageManager.ExecArgs("auth", "secret"), " ")
	res.Hints = []string{install, secret}

	n.Output.Error("NextAuth setup failed: %v", err)
	n.Output.Info("Finish it manually with:")
	for _, h := range res.Hints {
		n.Output.Info("  %s", h)
	}
	return res
}
