package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c2fo/netstorage/utils"
)

const copyBufferSize = 32 * 1024

func newLsCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "ls ns://<key>/<path>",
		Short: "List a remote directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if recursive {
				dirs, files, err := storage.Walk(cmd.Context(), path)
				if err != nil {
					return err
				}
				entries := make([]string, 0, len(dirs)+len(files))
				for d := range dirs {
					entries = append(entries, d+"/")
				}
				for f, size := range files {
					entries = append(entries, f+"\t"+strconv.FormatInt(size, 10))
				}
				sort.Strings(entries)
				for _, e := range entries {
					if _, err := fmt.Fprintln(out, e); err != nil {
						return err
					}
				}
				return nil
			}

			dirs, files, err := storage.Listdir(cmd.Context(), path)
			if err != nil {
				return err
			}
			for _, d := range dirs {
				if _, err := fmt.Fprintln(out, d+"/"); err != nil {
					return err
				}
			}
			for _, f := range files {
				if _, err := fmt.Fprintln(out, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "list the whole tree with file sizes")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ns://<key>/<path> [local-file|-]",
		Short: "Download a remote file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}

			f, err := storage.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			target := "-"
			if len(args) == 2 {
				target = args[1]
			} else if _, base := utils.SplitPath(path); base != "" {
				target = base
			}

			if target == "-" {
				_, err = utils.TouchCopyBuffered(cmd.OutOrStdout(), f, copyBufferSize)
				return err
			}

			local, err := os.Create(target)
			if err != nil {
				return err
			}
			if _, err := utils.TouchCopyBuffered(local, f, copyBufferSize); err != nil {
				_ = local.Close()
				return err
			}
			return local.Close()
		},
	}
}

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put <local-file|-> ns://<key>/<path>",
		Short: "Upload a local file, creating missing remote directories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[1])
			if err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				local, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() { _ = local.Close() }()
				src = local
			}

			name, err := storage.Save(cmd.Context(), path, src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ns://<key>/<path>",
		Short: "Delete a remote file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}
			return storage.Delete(cmd.Context(), path)
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists ns://<key>/<path>",
		Short: "Print whether a remote file or directory exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}
			found, err := storage.Exists(cmd.Context(), path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), found)
			return err
		},
	}
}

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size ns://<key>/<path>",
		Short: "Print the size of a remote file, 0 when it is missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}
			size, err := storage.Size(cmd.Context(), path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)
			return err
		},
	}
}

func newURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "url ns://<key>/<path>",
		Short: "Print the public URL of a remote path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, path, err := a.storage(args[0])
			if err != nil {
				return err
			}
			u, err := storage.URL(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
}
