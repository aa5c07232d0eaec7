package vox

import "BlockScene/shared/mapfile"

// DefaultPalette gera a paleta padrão do MagicaVoxel, usada quando o arquivo
// não tem chunk RGBA.
//
// Índice 0 é transparente. 1..215 formam o cubo 6x6x6 de componentes
// {ff, cc, 99, 66, 33, 00} sem o preto, com R variando mais devagar e B mais
// rápido. 216..255 são rampas de 10 tons de vermelho, verde, azul e cinza.
func DefaultPalette() [256]mapfile.RGBA {
	var p [256]mapfile.RGBA
	steps := []uint8{0xff, 0xcc, 0x99, 0x66, 0x33, 0x00}

	i := 1
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				if r == 0 && g == 0 && b == 0 {
					continue
				}
				p[i] = mapfile.RGBA{R: r, G: g, B: b, A: 0xff}
				i++
			}
		}
	}

	ramp := []uint8{0xee, 0xdd, 0xbb, 0xaa, 0x88, 0x77, 0x55, 0x44, 0x22, 0x11}
	for _, v := range ramp {
		p[i] = mapfile.RGBA{R: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		p[i] = mapfile.RGBA{G: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		p[i] = mapfile.RGBA{B: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		p[i] = mapfile.RGBA{R: v, G: v, B: v, A: 0xff}
		i++
	}
	return p
}
