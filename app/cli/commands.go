package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"coalert/app/models"
	"coalert/app/session"
)

// HandleCommand dispatches a subcommand and returns an exit code.
func (a *App) HandleCommand(args []string) int {
	if len(args) < 1 {
		a.printHelp()
		return 1
	}

	ctx := context.Background()
	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "feed":
		return a.feed(ctx, rest)
	case "post":
		return a.post(ctx, rest)
	case "comment":
		return a.comment(ctx, rest)
	case "categories":
		return a.listCategories(ctx)
	case "locations":
		return a.listLocations(ctx)
	case "users":
		return a.listUsers(ctx)
	case "help":
		a.printHelp()
		return 0
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n\n", cmd)
		a.printHelp()
		return 1
	}
}

func (a *App) printHelp() {
	helpText := `Usage: coalert <command> [options]

Commands:
  login <email> <senha>             Authenticate and store the credential pair
  logout                            Remove the stored credential pair
  whoami                            Show the currently authenticated user
  feed [--busca <texto>]            List alert postings
  post show <id>                    Show one alert with its comment thread
  post create [flags]               Create an alert
  post edit <id> [flags]            Edit one of your alerts
  post delete <id> [--confirmar]    Delete an alert (two-phase)
  post like <id>                    Toggle your like on an alert
  comment add <postId> [flags]      Comment on an alert
  comment edit <postId> <id> [flags]  Edit one of your comments
  comment delete <postId> <id> [--confirmar]  Delete a comment (two-phase)
  comment like <postId> <id>        Toggle your like on a comment
  categories                        List disaster categories
  locations                         List locations
  users                             List users
  help                              Display this help message
`
	fmt.Fprintln(a.out, helpText)
}

// requireUser is the session gate for mutating commands: commands behind it
// are only reachable with a resolvable session, mirroring the redirect to
// the login stack.
func (a *App) requireUser(ctx context.Context) (*models.User, bool) {
	user, err := a.resolver.ResolveCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, session.ErrAnonymous) || errors.Is(err, session.ErrSessionExpired) {
			fmt.Fprintln(a.out, "Faça login para continuar: coalert login <email> <senha>")
		} else {
			fmt.Fprintf(a.out, "Erro ao verificar a sessão: %v\n", err)
		}
		return nil, false
	}
	return user, true
}

func (a *App) login(ctx context.Context, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: coalert login <email> <senha>")
		return 1
	}
	email, password := args[0], args[1]

	user, err := a.users.Authenticate(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(a.out, "Email ou senha inválidos.")
		return 1
	}
	if err := a.store.Save(email, password); err != nil {
		fmt.Fprintf(a.out, "Erro ao salvar a sessão: %v\n", err)
		return 1
	}
	fmt.Fprintf(a.out, "Bem-vindo, %s!\n", user.Name)
	return 0
}

func (a *App) logout() int {
	if err := a.store.Clear(); err != nil {
		fmt.Fprintf(a.out, "Erro ao encerrar a sessão: %v\n", err)
		return 1
	}
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return 0
}

func (a *App) whoami(ctx context.Context) int {
	user, ok := a.requireUser(ctx)
	if !ok {
		return 1
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	return 0
}

func (a *App) feed(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	fs.SetOutput(a.out)
	search := fs.String("busca", "", "filter posts by title or content")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	posts, err := a.posts.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível carregar os alertas.")
		return 1
	}
	a.renderFeed(models.FilterPosts(posts, *search))
	return 0
}

func (a *App) post(ctx context.Context, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: coalert post <show|create|edit|delete|like> ...")
		return 1
	}
	switch args[0] {
	case "show":
		return a.postShow(ctx, args[1:])
	case "create":
		return a.postCreate(ctx, args[1:])
	case "edit":
		return a.postEdit(ctx, args[1:])
	case "delete":
		return a.postDelete(ctx, args[1:])
	case "like":
		return a.postLike(ctx, args[1:])
	default:
		fmt.Fprintf(a.out, "Unknown post command: %s\n", args[0])
		return 1
	}
}

func (a *App) postShow(ctx context.Context, args []string) int {
	id, ok := a.parseID(args, "coalert post show <id>")
	if !ok {
		return 1
	}

	detail := a.newPostDetail(id)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		// Fatal-for-screen: nothing partial is rendered.
		return 1
	}
	a.renderDetail(detail.Snapshot())
	return 0
}

func (a *App) postCreate(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("post create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("titulo", "", "alert title")
	content := fs.String("conteudo", "", "alert content")
	category := fs.Int("categoria", 0, "disaster category id")
	location := fs.Int("localizacao", 0, "location id")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	user, ok := a.requireUser(ctx)
	if !ok {
		return 1
	}

	post := &models.Post{
		Title:      *title,
		Content:    *content,
		UserID:     user.ID,
		CategoryID: *category,
		LocationID: *location,
	}
	if err := post.Validate(); err != nil {
		fmt.Fprintf(a.out, "Alerta inválido: %v\n", err)
		return 1
	}
	created, err := a.posts.Create(ctx, post)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível criar o alerta.")
		return 1
	}
	fmt.Fprintf(a.out, "Alerta criado (id %d).\n", created.ID)
	return 0
}

func (a *App) postEdit(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("post edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("titulo", "", "new title (empty keeps the current one)")
	content := fs.String("conteudo", "", "new content (empty keeps the current one)")
	category := fs.Int("categoria", 0, "new disaster category id (0 keeps the current one)")
	location := fs.Int("localizacao", 0, "new location id (0 keeps the current one)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	id, ok := a.parseID(fs.Args(), "coalert post edit <id> [--titulo ...] [--conteudo ...]")
	if !ok {
		return 1
	}
	user, ok := a.requireUser(ctx)
	if !ok {
		return 1
	}

	existing, err := a.posts.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível carregar o alerta.")
		return 1
	}
	if existing.UserID != user.ID {
		fmt.Fprintln(a.out, "Você só pode editar seus próprios alertas.")
		return 1
	}

	if *title != "" {
		existing.Title = *title
	}
	if *content != "" {
		existing.Content = *content
	}
	if *category != 0 {
		existing.CategoryID = *category
	}
	if *location != 0 {
		existing.LocationID = *location
	}
	if err := existing.Validate(); err != nil {
		fmt.Fprintf(a.out, "Alerta inválido: %v\n", err)
		return 1
	}
	if _, err := a.posts.Update(ctx, existing); err != nil {
		fmt.Fprintln(a.out, "Não foi possível atualizar o alerta.")
		return 1
	}
	fmt.Fprintf(a.out, "Alerta atualizado (id %d).\n", id)
	return 0
}

func (a *App) postDelete(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("post delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	confirm := fs.Bool("confirmar", false, "confirm the irreversible delete")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	id, ok := a.parseID(fs.Args(), "coalert post delete <id> [--confirmar]")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(id)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	if err := detail.RequestDeletePost(); err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return 1
	}
	if !*confirm {
		detail.CancelDelete()
		fmt.Fprintln(a.out, "Tem certeza que deseja excluir este alerta? Repita com --confirmar.")
		return 1
	}
	if err := detail.ConfirmDelete(ctx); err != nil {
		return 1
	}
	return 0
}

func (a *App) postLike(ctx context.Context, args []string) int {
	id, ok := a.parseID(args, "coalert post like <id>")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(id)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	if err := detail.ToggleLikePost(ctx); err != nil {
		return 1
	}
	snap := detail.Snapshot()
	fmt.Fprintf(a.out, "%s %d curtidas\n", heart(snap.PostStatus.IsLiked), snap.PostStatus.TotalLikes)
	return 0
}

func (a *App) comment(ctx context.Context, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: coalert comment <add|edit|delete|like> ...")
		return 1
	}
	switch args[0] {
	case "add":
		return a.commentAdd(ctx, args[1:])
	case "edit":
		return a.commentEdit(ctx, args[1:])
	case "delete":
		return a.commentDelete(ctx, args[1:])
	case "like":
		return a.commentLike(ctx, args[1:])
	default:
		fmt.Fprintf(a.out, "Unknown comment command: %s\n", args[0])
		return 1
	}
}

func (a *App) commentAdd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("comment add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	content := fs.String("conteudo", "", "comment body")
	replyTo := fs.Int("responder", 0, "comment id to reply to")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	postID, ok := a.parseID(fs.Args(), "coalert comment add <postId> --conteudo <texto> [--responder <id>]")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(postID)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	detail.SetDraft(*content)
	if *replyTo != 0 {
		if err := detail.SetReplyTo(*replyTo); err != nil {
			fmt.Fprintf(a.out, "Não é possível responder ao comentário %d: %v\n", *replyTo, err)
			return 1
		}
	}
	if err := detail.AddComment(ctx); err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return 1
	}
	return 0
}

func (a *App) commentEdit(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("comment edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	content := fs.String("conteudo", "", "new comment body")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	postID, commentID, ok := a.parseTwoIDs(fs.Args(), "coalert comment edit <postId> <id> --conteudo <texto>")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(postID)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	if err := detail.EditComment(ctx, commentID, *content); err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return 1
	}
	return 0
}

func (a *App) commentDelete(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("comment delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	confirm := fs.Bool("confirmar", false, "confirm the irreversible delete")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	postID, commentID, ok := a.parseTwoIDs(fs.Args(), "coalert comment delete <postId> <id> [--confirmar]")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(postID)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	if err := detail.RequestDeleteComment(commentID); err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return 1
	}
	if !*confirm {
		detail.CancelDelete()
		fmt.Fprintln(a.out, "Tem certeza que deseja excluir este comentário? Repita com --confirmar.")
		return 1
	}
	if err := detail.ConfirmDelete(ctx); err != nil {
		return 1
	}
	return 0
}

func (a *App) commentLike(ctx context.Context, args []string) int {
	postID, commentID, ok := a.parseTwoIDs(args, "coalert comment like <postId> <id>")
	if !ok {
		return 1
	}
	if _, ok := a.requireUser(ctx); !ok {
		return 1
	}

	detail := a.newPostDetail(postID)
	defer detail.Close()
	if err := detail.Load(ctx); err != nil {
		return 1
	}
	if err := detail.ToggleLikeComment(ctx, commentID); err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return 1
	}
	return 0
}

func (a *App) listCategories(ctx context.Context) int {
	categories, err := a.categories.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível carregar as categorias.")
		return 1
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "%3d  %-30s %s\n", c.ID, c.Title, c.Type)
	}
	return 0
}

func (a *App) listLocations(ctx context.Context) int {
	locations, err := a.locations.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível carregar as localizações.")
		return 1
	}
	for _, l := range locations {
		fmt.Fprintf(a.out, "%3d  %s, %s\n", l.ID, l.City, l.State)
	}
	return 0
}

func (a *App) listUsers(ctx context.Context) int {
	users, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Não foi possível carregar os usuários.")
		return 1
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%3d  %-25s %s\n", u.ID, u.Name, u.Email)
	}
	return 0
}

func (a *App) parseID(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Invalid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) parseTwoIDs(args []string, usage string) (int, int, bool) {
	if len(args) != 2 {
		fmt.Fprintf(a.out, "Usage: %s\n", usage)
		return 0, 0, false
	}
	first, err1 := strconv.Atoi(args[0])
	second, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || first <= 0 || second <= 0 {
		fmt.Fprintf(a.out, "Invalid ids: %s %s\n", args[0], args[1])
		return 0, 0, false
	}
	return first, second, true
}
