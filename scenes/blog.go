package scenes

import (
	"context"
	"sync"

	"github.com/automoto/coffeeon/blog"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// BlogScene lists posts from the blog and shows one with similar posts
type BlogScene struct {
	sceneChanger SceneChanger
	env          *Env
	back         Scene
	blogUI       *ui.BlogUI
	once         sync.Once
	shouldGoBack bool
	viewing      bool

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	posts     []blog.Post
	post      blog.Post
	similar   []blog.Post
	found     bool
	single    bool
	fetchDone bool
}

func NewBlogScene(sc SceneChanger, env *Env, back Scene) *BlogScene {
	return &BlogScene{sceneChanger: sc, env: env, back: back}
}

func (s *BlogScene) Update() {
	s.once.Do(s.configure)

	s.blogUI.Update()

	// Apply fetch results on the main goroutine
	s.mu.Lock()
	if s.fetchDone {
		s.fetchDone = false
		if s.single {
			s.blogUI.ShowPost(s.post, s.similar, s.found)
		} else {
			s.blogUI.ShowPosts(s.posts)
		}
	}
	s.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.goBack()
	}
	if s.shouldGoBack {
		s.cancel()
		s.sceneChanger.ChangeScene(s.back)
	}
}

func (s *BlogScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ink)
	if s.blogUI == nil {
		return
	}
	s.blogUI.UI.Draw(screen)
}

func (s *BlogScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (s *BlogScene) configure() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.blogUI = ui.NewBlogUI(
		func(slug string) { s.open(slug) },
		func() { s.goBack() },
	)
	s.fetchPosts()
}

// goBack returns to the list from a post, or leaves the blog from the list
func (s *BlogScene) goBack() {
	if s.viewing {
		s.viewing = false
		s.fetchPosts()
		return
	}
	s.shouldGoBack = true
}

func (s *BlogScene) fetchPosts() {
	s.blogUI.SetLoading()
	go func() {
		posts := s.env.Blog.Posts(s.ctx)
		s.mu.Lock()
		s.posts = posts
		s.single = false
		s.fetchDone = true
		s.mu.Unlock()
	}()
}

func (s *BlogScene) open(slug string) {
	s.viewing = true
	s.blogUI.SetLoading()
	go func() {
		post, found := s.env.Blog.PostBySlug(s.ctx, slug)
		var similar []blog.Post
		if found {
			similar = s.env.Blog.Similar(s.ctx, post.ID, cfg.Blog.SimilarSize)
		}
		s.mu.Lock()
		s.post, s.similar, s.found = post, similar, found
		s.single = true
		s.fetchDone = true
		s.mu.Unlock()
	}()
}
