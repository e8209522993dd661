package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themekit completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  themekit completion bash > /usr/local/etc/bash_completion.d/themekit\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  themekit completion zsh > \"${fpath[1]}/_themekit\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  themekit completion fish > ~/.config/fish/completions/themekit.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func generateBashCompletion() string {
	return `# bash completion for themekit                           -*- shell-script -*-

_themekit() {
    local cur prev words cword
    _init_completion || return

    local commands="list show export diff fork delete validate use current completion version help"

    local show_flags="--user --variant --json"
    local export_flags="--user --variant --output --copy --plain --style"
    local diff_flags="--variant"
    local fork_flags="--user --variant --force"
    local delete_flags="--user"
    local validate_flags="--variant"
    local use_flags="--user --variant"
    local current_flags="--history"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --output)
            _filedir
            return
            ;;
        --variant|--style|--history)
            return
            ;;
    esac

    local themes
    themes="$(themekit list 2>/dev/null | cut -c3-)"

    case "${command}" in
        show|export|diff|fork|use|delete)
            if [[ "${cur}" == -* ]]; then
                local flags_var="${command}_flags"
                COMPREPLY=($(compgen -W "${!flags_var}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            fi
            ;;
        validate)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${validate_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -f -X '!*.css' -- "${cur}"))
                _filedir -d
            fi
            ;;
        current)
            COMPREPLY=($(compgen -W "${current_flags}" -- "${cur}"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _themekit themekit
`
}

func generateZshCompletion() string {
	return `#compdef themekit

# zsh completion for themekit

_themekit_themes() {
    local -a themes
    themes=(${(f)"$(themekit list 2>/dev/null | cut -c3-)"})
    _describe -t themes 'themes' themes
}

_themekit() {
    local -a commands
    commands=(
        'list:List built-in and user-defined themes'
        'show:Resolve a theme and print its colors'
        'export:Print a theme flattened into a single stylesheet'
        'diff:Compare the resolved colors of two themes'
        'fork:Save a copy of a theme as a user-defined theme'
        'delete:Delete a user-defined theme'
        'validate:Resolve stylesheet files and report errors'
        'use:Select the active theme and variants'
        'current:Print the active theme'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'themekit commands' commands
            ;;
        args)
            case $words[1] in
                show)
                    _arguments \
                        '--user[Look the theme up among user-defined themes]' \
                        '*--variant[Allowed variant]:variant:' \
                        '--json[Print colors as JSON]' \
                        '1:theme:_themekit_themes'
                    ;;
                export)
                    _arguments \
                        '--user[Look the theme up among user-defined themes]' \
                        '*--variant[Allowed variant]:variant:' \
                        '--output[Output file path]:output file:_files -g "*.css"' \
                        '--copy[Copy the stylesheet to the clipboard]' \
                        '--plain[Disable syntax highlighting]' \
                        '--style[Chroma style]:style:' \
                        '1:theme:_themekit_themes'
                    ;;
                diff)
                    _arguments \
                        '*--variant[Allowed variant]:variant:' \
                        '1:theme:_themekit_themes' \
                        '2:theme:_themekit_themes'
                    ;;
                fork)
                    _arguments \
                        '--user[Look the source theme up among user-defined themes]' \
                        '*--variant[Allowed variant]:variant:' \
                        '--force[Overwrite an existing user theme]' \
                        '1:source theme:_themekit_themes' \
                        '2:new name:'
                    ;;
                delete)
                    _arguments \
                        '--user[Delete a user-defined theme]' \
                        '1:theme:_themekit_themes'
                    ;;
                use)
                    _arguments \
                        '--user[Select a user-defined theme]' \
                        '*--variant[Allowed variant]:variant:' \
                        '1:theme:_themekit_themes'
                    ;;
                validate)
                    _arguments \
                        '*--variant[Allowed variant]:variant:' \
                        '*:stylesheet:_files -g "*.css"'
                    ;;
                current)
                    _arguments \
                        '--history[List previous selections]:count:'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_themekit "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for themekit

complete -c themekit -f

# Subcommands
complete -c themekit -n '__fish_use_subcommand' -a list -d 'List built-in and user-defined themes'
complete -c themekit -n '__fish_use_subcommand' -a show -d 'Resolve a theme and print its colors'
complete -c themekit -n '__fish_use_subcommand' -a export -d 'Print a theme flattened into a single stylesheet'
complete -c themekit -n '__fish_use_subcommand' -a diff -d 'Compare the resolved colors of two themes'
complete -c themekit -n '__fish_use_subcommand' -a fork -d 'Save a copy of a theme as a user-defined theme'
complete -c themekit -n '__fish_use_subcommand' -a delete -d 'Delete a user-defined theme'
complete -c themekit -n '__fish_use_subcommand' -a validate -d 'Resolve stylesheet files and report errors'
complete -c themekit -n '__fish_use_subcommand' -a use -d 'Select the active theme and variants'
complete -c themekit -n '__fish_use_subcommand' -a current -d 'Print the active theme'
complete -c themekit -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c themekit -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c themekit -n '__fish_use_subcommand' -a help -d 'Show help message'

# Theme names
complete -c themekit -n '__fish_seen_subcommand_from show export diff fork delete use' -a '(themekit list 2>/dev/null | string sub -s 3)'

# Shared flags
complete -c themekit -n '__fish_seen_subcommand_from show export fork delete use' -l user -d 'Use the user-defined tier'
complete -c themekit -n '__fish_seen_subcommand_from show export diff fork use validate' -l variant -d 'Allowed variant' -r

# show / export flags
complete -c themekit -n '__fish_seen_subcommand_from show' -l json -d 'Print colors as JSON'
complete -c themekit -n '__fish_seen_subcommand_from export' -l output -d 'Output file path' -rF
complete -c themekit -n '__fish_seen_subcommand_from export' -l copy -d 'Copy the stylesheet to the clipboard'
complete -c themekit -n '__fish_seen_subcommand_from export' -l plain -d 'Disable syntax highlighting'
complete -c themekit -n '__fish_seen_subcommand_from export' -l style -d 'Chroma style' -r

# fork flags
complete -c themekit -n '__fish_seen_subcommand_from fork' -l force -d 'Overwrite an existing user theme'

# validate - file completion
complete -c themekit -n '__fish_seen_subcommand_from validate' -F

# current flags
complete -c themekit -n '__fish_seen_subcommand_from current' -l history -d 'List previous selections' -r

# completion - shell names
complete -c themekit -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
