// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/lazyunit/lazyunit/internal/installer"
)

func TestRenderPlan(t *testing.T) {
	t.Parallel()
	plan := &installer.Plan{Install: []installer.PlanEntry{
		{Name: "left-pad", Version: "1.3.0", Summary: "Pads strings."},
		{Name: "is-odd", Version: "0.1.2"},
	}}

	var sb strings.Builder
	renderPlan(&sb, "/tmp/requirements.txt", plan)
	out := sb.String()

	for _, want := range []string{
		"Install Plan",
		"/tmp/requirements.txt",
		"left-pad==1.3.0",
		"Pads strings.",
		"is-odd==0.1.2",
		"2 package(s) to install",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderPlan output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlan_Empty(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	renderPlan(&sb, "/tmp/requirements.txt", &installer.Plan{})
	out := sb.String()

	if !strings.Contains(out, "Nothing to install") {
		t.Errorf("renderPlan of an empty plan should say so:\n%s", out)
	}
	if strings.Contains(out, "package(s) to install") {
		t.Errorf("empty plan should not count packages:\n%s", out)
	}
}
