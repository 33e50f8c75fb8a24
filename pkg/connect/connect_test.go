package connect

import (
	"reflect"
	"strings"
	"testing"
)

func TestCredentialExportsDefaults(t *testing.T) {
	expected := []string{
		`MYSQL_USER=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.username}" | base64 --decode)`,
		`MYSQL_PASSWORD=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.password}" | base64 --decode)`,
		`MYSQL_DATABASE=$(kubectl get secret readyset-upstream-database -o jsonpath="{.data.database}" | base64 --decode)`,
	}

	result := Target{}.CredentialExports()
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("CredentialExports() = %v, want %v", result, expected)
	}
}

func TestCredentialExportsNamespaceAndSecretOverride(t *testing.T) {
	target := Target{SecretName: "rs-creds", Namespace: "cache"}

	for _, line := range target.CredentialExports() {
		if !strings.Contains(line, "kubectl get secret rs-creds --namespace cache ") {
			t.Errorf("unexpected export command: %s", line)
		}
	}
}

func TestHostExport(t *testing.T) {
	expected := `READYSET_HOST=$(kubectl get svc readyset-adapter --template "{{ range (index .status.loadBalancer.ingress 0) }}{{ . }}{{ end }}")`
	if got := (Target{}).HostExport(); got != expected {
		t.Errorf("HostExport() = %q, want %q", got, expected)
	}
}

func TestHostExportNamespace(t *testing.T) {
	got := Target{Namespace: "cache"}.HostExport()
	if !strings.Contains(got, "kubectl get svc readyset-adapter --namespace cache ") {
		t.Errorf("HostExport() = %q", got)
	}
}

func TestMySQLCommandUsesAllFlags(t *testing.T) {
	cmd := Target{}.MySQLCommand()

	for _, flag := range []string{"-u ", "-h ", "--password=", "--database="} {
		if !strings.Contains(cmd, flag) {
			t.Errorf("MySQLCommand() missing %q: %s", flag, cmd)
		}
	}
}

func TestScriptOrder(t *testing.T) {
	script := Target{}.Script()
	lines := strings.Split(script, "\n")

	if len(lines) != 5 {
		t.Fatalf("Script() has %d lines, want 5:\n%s", len(lines), script)
	}
	if !strings.HasPrefix(lines[0], "MYSQL_USER=") {
		t.Errorf("first line should export the user: %s", lines[0])
	}
	if !strings.HasPrefix(lines[3], "READYSET_HOST=") {
		t.Errorf("fourth line should resolve the host: %s", lines[3])
	}
	if !strings.HasPrefix(lines[4], "mysql ") {
		t.Errorf("last line should be the client invocation: %s", lines[4])
	}
}
