package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blog-idea-api/internal/domain/entity"
	"blog-idea-api/internal/tui"
)

func newIdeasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ideas <topic>",
		Short: "Generate blog post ideas for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.TrimSpace(strings.Join(args, " "))
			if topic == "" {
				return fmt.Errorf("please enter a blog topic")
			}
			ideas, err := app.client().Ideas(cmd.Context(), topic)
			if err != nil {
				return err
			}
			return app.printLines(cmd.OutOrStdout(), "ideas", ideas)
		},
	}
}

func newOutlineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "outline <idea>",
		Short: "Generate a blog post outline for an idea",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outline, err := app.client().Outline(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return app.printLines(cmd.OutOrStdout(), "outline", outline)
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	var (
		topic    string
		ideas    []string
		selected string
		outline  []string
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Create a share link for a topic, its ideas and outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := &entity.ShareSnapshot{
				Topic:   topic,
				Ideas:   nonNil(ideas),
				Outline: nonNil(outline),
			}
			if cmd.Flags().Changed("selected") {
				snapshot.SelectedIdea = &selected
			}

			c := app.client()
			id, err := c.Share(cmd.Context(), snapshot)
			if err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"shareId": id, "url": c.ShareURL(id)})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.ShareURL(id))
			return err
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic")
	cmd.Flags().StringArrayVar(&ideas, "idea", nil, "Idea (repeatable)")
	cmd.Flags().StringVar(&selected, "selected", "", "Selected idea")
	cmd.Flags().StringArrayVar(&outline, "outline", nil, "Outline section (repeatable)")
	return cmd
}

func newSharedCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "shared <id>",
		Short: "Show shared content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.client()
			snapshot, err := c.Shared(cmd.Context(), strings.TrimPrefix(strings.TrimSpace(args[0]), "share-"))
			if err != nil {
				return err
			}
			if interactive {
				return app.runTUI(tui.NewSharedModel(c, snapshot))
			}
			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), snapshot)
			}
			return printSnapshot(cmd, snapshot)
		},
	}

	cmd.Flags().BoolVar(&interactive, "tui", false, "Open the snapshot in the interactive viewer")
	return cmd
}

func printSnapshot(cmd *cobra.Command, s *entity.ShareSnapshot) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Topic: %s\n", s.Topic)
	if len(s.Ideas) > 0 {
		fmt.Fprintln(out, "\nIdeas:")
		for i, idea := range s.Ideas {
			marker := " "
			if s.HasSelection() && *s.SelectedIdea == idea {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %d. %s\n", marker, i+1, idea)
		}
	}
	if len(s.Outline) > 0 {
		fmt.Fprintln(out, "\nOutline:")
		for i, section := range s.Outline {
			fmt.Fprintf(out, "  %d. %s\n", i+1, section)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
