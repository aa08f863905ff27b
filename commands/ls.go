package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"shbox/core/host"
)

// Ls implements the UNIX ls command.
func Ls(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "ls [OPTION]... [FILE]...",
		Short: "List information about the FILEs (the current directory by default).",
	}

	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	longListing := cmd.Flags().Bool('l', "use a long listing format")

	var color ColorPrinter
	color.Init(cmd.Flags(), p)

	return cmd.Run(p, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			directories = append(directories, ".")
		}
		sort.Strings(directories)

		showDirectoryNames := len(directories) > 1

		exitCode := 0
		for i, directory := range directories {
			file, err := p.Open(directory)
			if err != nil {
				fmt.Fprintf(p.Stderr(), "ls: %s: %v\n", directory, err)
				exitCode = 1
				continue
			}

			allPaths, err := file.Readdir(-1)
			file.Close()
			if err != nil {
				fmt.Fprintf(p.Stderr(), "ls: %s: %v\n", directory, err)
				exitCode = 1
				continue
			}

			var paths []os.FileInfo
			for _, info := range allPaths {
				if !*listAll && strings.HasPrefix(info.Name(), ".") {
					continue
				}
				paths = append(paths, info)
			}

			sort.Slice(paths, func(i, j int) bool {
				return paths[i].Name() < paths[j].Name()
			})

			if showDirectoryNames {
				if i > 0 {
					fmt.Fprintln(p.Stdout())
				}
				fmt.Fprintf(p.Stdout(), "%s:\n", directory)
			}

			for _, info := range paths {
				name := info.Name()
				if info.IsDir() {
					name = color.Sprintf(ColorBoldBlue, "%s", name)
				}

				if *longListing {
					kind := "-"
					if info.IsDir() {
						kind = "d"
					}
					fmt.Fprintf(p.Stdout(), "%s %10d %s\n", kind, info.Size(), name)
				} else {
					fmt.Fprintln(p.Stdout(), name)
				}
			}
		}

		return exitCode
	})
}

var _ host.ProcessFunc = Ls

func init() {
	addCmd("ls", "List directory contents.", Ls)
}
