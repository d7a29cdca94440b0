package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileview/render"
	"github.com/plus3/tileview/world"
	"github.com/plus3/tileview/world/debugui"
	debugui_ebiten "github.com/plus3/tileview/world/debugui/ebiten"
)

const windowTitle = "Tile View"

func main() {
	cfg := world.DefaultConfig()

	assetsDir := flag.String("assets", "assets", "Directory holding the image assets.")
	tileSetName := flag.String("tileset", "Dirt-Tile-Set-2.png", "Tile set image file name.")
	characterName := flag.String("character", "F_Body_blueEyes.png", "Character sheet image file name.")
	seed := flag.Uint64("seed", 0, "Grid generation seed; 0 picks a random one.")
	width := flag.Uint("width", uint(cfg.MapSize.X), "Grid width in tiles.")
	height := flag.Uint("height", uint(cfg.MapSize.Y), "Grid height in tiles.")
	speed := flag.Float64("speed", float64(cfg.PlayerSpeed), "Player speed in world units per second.")
	smoothing := flag.Float64("smoothing", float64(cfg.SmoothingRate), "Camera smoothing rate per second.")
	vsync := flag.Bool("vsync", false, "Wait for vertical sync instead of presenting immediately.")
	useImgui := flag.Bool("imgui", true, "Show the Dear ImGui diagnostics overlay instead of the text HUD.")
	windowWidth := flag.Int("window-width", 1280, "Initial window width.")
	windowHeight := flag.Int("window-height", 720, "Initial window height.")
	flag.Parse()

	cfg.MapSize.X = uint32(*width)
	cfg.MapSize.Y = uint32(*height)
	cfg.PlayerSpeed = float32(*speed)
	cfg.SmoothingRate = float32(*smoothing)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	w, err := world.New(cfg, rng)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	log.Printf("Generated %dx%d grid with %d textures\n", cfg.MapSize.X, cfg.MapSize.Y, cfg.TextureCount)

	var imguiBackend *debugui_ebiten.ImguiBackend
	if *useImgui {
		imguiBackend = debugui_ebiten.NewImguiBackend(windowTitle, *windowWidth, *windowHeight)
	} else {
		ebiten.SetWindowSize(*windowWidth, *windowHeight)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(*vsync)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	renderer, err := loadRenderer(cfg, *assetsDir, *tileSetName, *characterName)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	gizmos := world.NewGizmos()
	scheduler := world.NewScheduler(w)
	scheduler.SetGizmos(gizmos)
	world.RegisterDefaultSystems(scheduler, cfg)

	game := &Game{
		World:     w,
		Scheduler: scheduler,
		Renderer:  renderer,
		Gizmos:    gizmos,
		Timer:     world.NewFrameTimer(),
	}

	if imguiBackend != nil {
		overlay := &debugui.ImguiSystem{}
		game.Imgui = imguiBackend
		game.Overlay = overlay
		game.Perf = debugui.Install(overlay, scheduler, 120)
		scheduler.Register(overlay)
		game.Input = keyboardInput{overlay: overlay}
	} else {
		hud, err := render.NewHUD(14)
		if err != nil {
			log.Fatalf("Failed to create HUD: %v", err)
		}
		game.HUD = hud
		game.System = debugui.NewSystemSampler(time.Second)
		game.Input = keyboardInput{}
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Frame loop stopped: %v", err)
	}
}

func loadRenderer(cfg world.Config, dir, tileSetName, characterName string) (*render.Renderer, error) {
	tileImg, placeholder, err := render.LoadOrPlaceholder(dir, tileSetName, func() image.Image {
		base := render.TileSetLayout(image.Point{}, cfg.TileSize, cfg.Spacing)
		return render.PlaceholderTileSet(int(cfg.TextureCount), base)
	})
	if err != nil {
		return nil, err
	}
	if placeholder {
		log.Printf("Tile set %s not found, using placeholder tiles\n", tileSetName)
	}

	tileLayout := render.TileSetLayout(tileImg.Bounds().Size(), cfg.TileSize, cfg.Spacing)
	if tileLayout.Len() < int(cfg.TextureCount) {
		log.Printf("Tile set holds %d cells but %d textures are in use\n", tileLayout.Len(), cfg.TextureCount)
	}

	charLayout := render.CharacterLayout()
	charImg, placeholder, err := render.LoadOrPlaceholder(dir, characterName, func() image.Image {
		return render.PlaceholderCharacter(charLayout)
	})
	if err != nil {
		return nil, err
	}
	if placeholder {
		log.Printf("Character sheet %s not found, using placeholder sprite\n", characterName)
	}

	log.Println("Assets loaded.")
	return render.NewRenderer(
		render.NewSheet(tileImg, tileLayout),
		render.NewSheet(charImg, charLayout),
	), nil
}
