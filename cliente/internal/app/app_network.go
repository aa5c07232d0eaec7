package app

import (
	"context"
	"errors"
	"log"
	"time"

	"BlockScene/cliente/internal/client"
	"BlockScene/shared/mapdata"
	"BlockScene/shared/mapfile"
)

// Tentativas de conexão na partida. Poucas: sem servidor, a cena sai do arquivo local.
var (
	serverRetries    = 3
	serverRetryDelay = time.Second
	serverTimeout    = 10 * time.Second
)

// loadMap obtém o documento do mapa configurado.
//
// Com servidor: servidor, depois a cópia na biblioteca local, depois o arquivo.
// Sem servidor: só o arquivo. Nunca retorna nil; erros viram cena parcial ou vazia.
func (a *App) loadMap(ctx context.Context) *mapfile.Document {
	if a.Config.ServerURL != "" {
		doc, err := a.fetchFromServer(ctx)
		if err == nil {
			a.mapSource = a.Config.ServerURL
			a.storeLocalCopy(doc)
			return doc
		}
		log.Printf("[Network] Falha ao obter mapa %q do servidor: %v. Usando cópia local.", a.Config.MapName, err)

		if a.library != nil {
			doc, err := a.library.LoadMap(a.Config.MapName)
			if err == nil {
				a.mapSource = "biblioteca local"
				return doc
			}
			if !errors.Is(err, mapdata.ErrMapNotFound) {
				log.Printf("[Biblioteca] Erro ao ler mapa %q: %v", a.Config.MapName, err)
			}
		}
	}

	path := a.Config.MapPath()
	a.mapSource = path

	doc, err := mapfile.Load(path)
	if err != nil {
		if len(doc.Blocks) > 0 {
			log.Printf("[Mapa] AVISO: %s lido parcialmente (%d blocos): %v", path, len(doc.Blocks), err)
		} else {
			log.Printf("[Mapa] ERRO: %v. Cena sem blocos.", err)
		}
	}
	return doc
}

// fetchFromServer pede o mapa ao servidor com uma conexão de vida curta.
func (a *App) fetchFromServer(ctx context.Context) (*mapfile.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, serverTimeout)
	defer cancel()

	c := client.NewMapClient(a.Config.ServerURL)
	c.MaxRetries = serverRetries
	c.RetryDelay = serverRetryDelay

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	defer c.Close()

	return c.RequestMap(ctx, a.Config.MapName)
}

// storeLocalCopy guarda o mapa recebido para uso offline.
func (a *App) storeLocalCopy(doc *mapfile.Document) {
	if a.library == nil {
		return
	}
	if err := a.library.SaveMap(a.Config.MapName, doc); err != nil {
		log.Printf("[Biblioteca] AVISO: não foi possível guardar cópia local: %v", err)
	}
}
