package main

import (
	"log"

	"woodshop-assistant-be/internal/config"
	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/mapper"
	"woodshop-assistant-be/internal/model"
	"woodshop-assistant-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm/clause"
)

var products = []*entity.Product{
	{Id: "prod-chisel-set", Title: "Bench Chisel Set", Tags: []string{"workshop basics", "chisel sharpening", "hand tools"}, Link: "https://shop.example.com/chisel-set"},
	{Id: "prod-sharpening-stone", Title: "Combination Sharpening Stone", Tags: []string{"chisel sharpening", "workshop basics"}, Link: "https://shop.example.com/sharpening-stone"},
	{Id: "prod-dovetail-saw", Title: "Dovetail Saw", Tags: []string{"joinery basics", "dovetails", "hand tools"}, Link: "https://shop.example.com/dovetail-saw"},
	{Id: "prod-marking-gauge", Title: "Wheel Marking Gauge", Tags: []string{"joinery basics", "layout"}, Link: "https://shop.example.com/marking-gauge"},
	{Id: "prod-table-saw-sled", Title: "Crosscut Sled Kit", Tags: []string{"table saw", "shop jigs"}, Link: "https://shop.example.com/crosscut-sled"},
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	color.Cyan("Seeding %d products...", len(products))

	productMapper := mapper.NewProductMapper()
	for _, product := range products {
		m := productMapper.ToModel(product)
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&m).Error
		if err != nil {
			color.Red("  FAIL %s: %v", product.Id, err)
			continue
		}
		color.Green("  OK   %s (%s)", product.Id, product.Title)
	}

	var count int64
	db.Model(&model.Product{}).Count(&count)
	color.Cyan("Done. products table now holds %d rows.", count)
}
