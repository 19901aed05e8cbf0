// Package slidekit is the composition root for slidekit.
//
// It keeps each presentation slide in its own markdown file and assembles a
// directory of them into one Marp deck:
//
//   - Slides are every *.md file in the directory, in file name order,
//     except combined_slides.md, README.md and CLAUDE.md.
//   - The frontmatter is style.yaml from the same directory. When it is
//     missing, a default template is copied in on the first run.
//   - Slides heavy with code fences or table pipes get a fit-layout class.
//   - The result is written to combined_slides.md, replacing the previous one.
//
// Usage:
//
//	res, err := slidekit.Combine(ctx, "./talk", "./templates/style.yaml")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Combined %d slides into %s\n", res.Slides, res.OutputPath)
package slidekit
