package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformkit/host"
)

// demoLayout is the built-in test level: '#' solid, '~' ice, '.' empty.
var demoLayout = []string{
	"########################################",
	"#......................................#",
	"#......................................#",
	"#..........#####.......................#",
	"#......................................#",
	"#....................########..........#",
	"#......................................#",
	"#...####...............................#",
	"#..........................########....#",
	"#......................................#",
	"#.............###......................#",
	"#......................................#",
	"#......................................#",
	"#................####..................#",
	"#......................................#",
	"#......................~~~~~~~~........#",
	"#......................................#",
	"#......##..............................#",
	"#......................................#",
	"#......................................#",
	"#......................................#",
	"########################################",
}

// Level holds the demo tile map and its render images.
type Level struct {
	Tiles *host.TileMap

	solidImg *ebiten.Image
	iceImg   *ebiten.Image
}

func NewLevel() *Level {
	h := len(demoLayout)
	w := len(demoLayout[0])
	tiles := &host.TileMap{Width: w, Height: h, Tiles: make([]int, w*h)}
	for y, row := range demoLayout {
		for x, ch := range row {
			switch ch {
			case '#':
				tiles.Tiles[y*w+x] = host.TileSolid
			case '~':
				tiles.Tiles[y*w+x] = host.TileIce
			}
		}
	}

	solidImg := ebiten.NewImage(host.TileSize, host.TileSize)
	solidImg.Fill(colornames.Darkslategray)
	iceImg := ebiten.NewImage(host.TileSize, host.TileSize)
	iceImg.Fill(colornames.Lightsteelblue)

	return &Level{Tiles: tiles, solidImg: solidImg, iceImg: iceImg}
}

func (l *Level) Draw(screen *ebiten.Image) {
	for y := 0; y < l.Tiles.Height; y++ {
		for x := 0; x < l.Tiles.Width; x++ {
			var img *ebiten.Image
			switch l.Tiles.At(x, y) {
			case host.TileSolid:
				img = l.solidImg
			case host.TileIce:
				img = l.iceImg
			default:
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*host.TileSize), float64(y*host.TileSize))
			screen.DrawImage(img, op)
		}
	}
}
