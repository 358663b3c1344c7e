package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c2fo/netstorage/cache"
	"github.com/c2fo/netstorage/nssimple"
	"github.com/c2fo/netstorage/treesync"
	"github.com/c2fo/netstorage/utils"
)

func newSyncCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "sync ns://<key>/<root>",
		Short: "Record the remote tree below root in the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, root, err := a.storage(args[0])
			if err != nil {
				return err
			}
			store, err := a.cacheStore()
			if err != nil {
				return err
			}

			builder := treesync.NewBuilder(storage.Session(), store)
			res, err := builder.Sync(cmd.Context(), storage.Key(), root, recursive)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d directories, %d files (%d new, %d already cached)\n",
				args[0], res.Directories, res.Files, res.Created, res.Existing)
			return err
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "list the whole tree below root")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree ns://<key>[/<path>]",
		Short: "Print the cached tree without contacting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, path, err := nssimple.Parse(args[0])
			if err != nil {
				return err
			}
			store, err := a.cacheStore()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			path = utils.NormPath(path)
			if path == "" {
				return printTree(ctx, out, store, key, nil, 0, nil)
			}

			node, err := store.GetNode(ctx, key, path)
			switch {
			case errors.Is(err, cache.ErrNodeNotFound):
				// sync roots are never cached themselves, their entries sit at the top level
				under := func(n *cache.Node) bool { return strings.HasPrefix(n.Path, path+"/") }
				roots, err := store.ListChildren(ctx, key, nil)
				if err != nil {
					return err
				}
				for i := range roots {
					if under(&roots[i]) {
						return printTree(ctx, out, store, key, nil, 0, under)
					}
				}
				return fmt.Errorf("%s is not cached, run sync first", args[0])
			case err != nil:
				return err
			case !node.IsDir():
				_, err = fmt.Fprintln(out, node.Filename())
				return err
			}
			return printTree(ctx, out, store, key, &node.ID, 0, nil)
		},
	}
}

// printTree prints the children of parentID depth first. keep, when set, filters the first level only.
func printTree(ctx context.Context, w io.Writer, store cache.Store, key string, parentID *uint, depth int,
	keep func(*cache.Node) bool,
) error {
	children, err := store.ListChildren(ctx, key, parentID)
	if err != nil {
		return err
	}

	for i := range children {
		n := &children[i]
		if keep != nil && !keep(n) {
			continue
		}
		name := n.Filename()
		if n.IsDir() {
			name += "/"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name); err != nil {
			return err
		}
		if n.IsDir() {
			if err := printTree(ctx, w, store, key, &n.ID, depth+1, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
