package mapdata

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"BlockScene/shared/mapfile"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MapModel representa o esquema do banco de dados para um mapa importado.
type MapModel struct {
	Name       string `gorm:"primaryKey"`
	Data       []byte // Documento do mapa serializado em JSON
	BlockCount int
	ColorCount int
	UpdatedAt  time.Time // Para controle interno do GORM
}

// LibraryMetadata armazena informações globais da biblioteca no banco.
type LibraryMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// MapInfo é o resumo de um mapa para listagem.
type MapInfo struct {
	Name       string
	BlockCount int
	ColorCount int
	UpdatedAt  time.Time
}

const CurrentFormatVersion = 1

// ErrMapNotFound indica que o mapa pedido não existe na biblioteca.
var ErrMapNotFound = errors.New("mapa não encontrado")

// Library é a biblioteca de mapas persistida em SQLite.
type Library struct {
	DB *gorm.DB
}

// Open abre (ou cria) o banco de dados SQLite da biblioteca e roda migrações.
func Open(dbPath string) (*Library, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Configuramos o logger para ser silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&MapModel{}, &LibraryMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&LibraryMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Biblioteca] Banco de dados SQLite aberto: %s", dbPath)
	return &Library{DB: db}, nil
}

// SaveMap grava (ou substitui) um mapa na biblioteca.
func (l *Library) SaveMap(name string, doc *mapfile.Document) error {
	if l.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return fmt.Errorf("falha ao serializar mapa %s: %w", name, err)
	}

	model := MapModel{
		Name:       name,
		Data:       buf.Bytes(),
		BlockCount: len(doc.Blocks),
		ColorCount: len(doc.Colors),
	}

	// Upsert (Cria ou Atualiza)
	if err := l.DB.Save(&model).Error; err != nil {
		log.Printf("[Biblioteca] ERRO ao salvar mapa %s: %v", name, err)
		return err
	}
	return nil
}

// LoadMap carrega um mapa pelo nome.
func (l *Library) LoadMap(name string) (*mapfile.Document, error) {
	if l.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var model MapModel
	err := l.DB.First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	return mapfile.Parse(model.Data)
}

// ListMaps retorna o resumo de todos os mapas, ordenados por nome.
func (l *Library) ListMaps() ([]MapInfo, error) {
	if l.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var models []MapModel
	if err := l.DB.Select("name", "block_count", "color_count", "updated_at").Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	infos := make([]MapInfo, 0, len(models))
	for _, m := range models {
		infos = append(infos, MapInfo{
			Name:       m.Name,
			BlockCount: m.BlockCount,
			ColorCount: m.ColorCount,
			UpdatedAt:  m.UpdatedAt,
		})
	}
	return infos, nil
}

// DeleteMap remove um mapa da biblioteca.
func (l *Library) DeleteMap(name string) error {
	if l.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}
	res := l.DB.Delete(&MapModel{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	return nil
}

// Close fecha a conexão com o banco.
func (l *Library) Close() error {
	if l.DB == nil {
		return nil
	}
	sqlDB, err := l.DB.DB()
	if err != nil {
		return err
	}
	l.DB = nil
	return sqlDB.Close()
}
