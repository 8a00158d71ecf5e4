package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInitCommand(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"starship init zsh", true},
		{"oh-my-posh init bash", true},
		{"mise init fish", true},
		{"zoxide init zsh --hook pwd", true},
		{"atuin init zsh --disable-up-arrow", true},
		{"fzf init bash", true},
		{"mcfly init zsh", true},
		{"env STARSHIP_SHELL=zsh starship init zsh", true},
		{"env A=1 B=2 zoxide init bash", true},
		{`eval "$(starship init zsh)"`, true},
		{`eval "$(env MISE_SHELL=zsh mise init zsh)"`, true},
		{`eval $(zoxide init bash)`, true},
		{"  starship init zsh  ", true},

		{"", false},
		{"starship init", false},             // missing shell name
		{"starship prompt", false},           // wrong subcommand
		{"notstarship init zsh", false},      // unknown tool
		{"starship2 init zsh", false},        // unknown tool suffix
		{"rm -rf / && starship init zsh", false},
		{`eval "$(starship init zsh)" ; rm -rf /`, false},
		{"starship init zsh; echo pwned", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInitCommand(tt.line), "IsInitCommand(%q)", tt.line)
	}
}

func TestIsPackageInstall(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"npm install express", true},
		{"yarn add react", true},
		{"pip install requests", true},
		{"pip3 install requests", true},
		{"cargo add serde", true},
		{"brew install jq", true},
		{"apt install curl", true},
		{"dnf install git", true},
		{"pacman install vim", true},
		{"npm install", true}, // bare install, no package

		{"pipx install foo", false}, // not in the manager set
		{"npm run build", false},
		{"pip uninstall requests", false},
		{"echo pip install", false}, // manager must lead the line
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPackageInstall(tt.line), "IsPackageInstall(%q)", tt.line)
	}
}
