package seed

import (
	"github.com/shopspring/decimal"

	"github.com/wishwaD7/digital-books-store/internal/domain"
)

// Products returns the starter catalog used for manual testing and demos.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "book-dune",
			Title:       "Dune",
			Author:      "Frank Herbert",
			Price:       decimal.NewFromFloat(12.99),
			Discount:    decimal.NewFromFloat(0.15),
			Genre:       "Science Fiction",
			Description: "A desert planet, a noble house, and the spice that moves the universe.",
			CoverImage:  "/covers/dune.jpg",
			Format:      domain.FormatEPUB,
			Rating:      4.8,
			Pages:       688,
			Language:    "English",
			ReleaseDate: "1965-08-01",
		},
		{
			ID:          "book-pride",
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Price:       decimal.NewFromFloat(8.49),
			Discount:    decimal.Zero,
			Genre:       "Romance",
			Description: "Elizabeth Bennet navigates manners, marriage, and Mr. Darcy.",
			CoverImage:  "/covers/pride-and-prejudice.jpg",
			Format:      domain.FormatEPUB,
			Rating:      4.6,
			Pages:       432,
			Language:    "English",
			ReleaseDate: "1813-01-28",
		},
		{
			ID:          "book-hobbit",
			Title:       "The Hobbit",
			Author:      "J.R.R. Tolkien",
			Price:       decimal.NewFromFloat(10.99),
			Discount:    decimal.NewFromFloat(0.2),
			Genre:       "Fantasy",
			Description: "Bilbo Baggins leaves the Shire for a share of a dragon's hoard.",
			CoverImage:  "/covers/the-hobbit.jpg",
			Format:      domain.FormatMOBI,
			Rating:      4.7,
			Pages:       310,
			Language:    "English",
			ReleaseDate: "1937-09-21",
		},
		{
			ID:          "book-gatsby",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Price:       decimal.NewFromFloat(7.99),
			Discount:    decimal.Zero,
			Genre:       "Classic",
			Description: "Jay Gatsby throws parties across the bay from everything he wants.",
			CoverImage:  "/covers/the-great-gatsby.jpg",
			Format:      domain.FormatPDF,
			Rating:      4.2,
			Pages:       180,
			Language:    "English",
			ReleaseDate: "1925-04-10",
		},
		{
			ID:          "book-murder-orient",
			Title:       "Murder on the Orient Express",
			Author:      "Agatha Christie",
			Price:       decimal.NewFromFloat(9.49),
			Discount:    decimal.NewFromFloat(0.1),
			Genre:       "Mystery",
			Description: "Hercule Poirot boards a snowbound train with a corpse and twelve suspects.",
			CoverImage:  "/covers/murder-on-the-orient-express.jpg",
			Format:      domain.FormatEPUB,
			Rating:      4.5,
			Pages:       256,
			Language:    "English",
			ReleaseDate: "1934-01-01",
		},
		{
			ID:          "book-sapiens",
			Title:       "Sapiens: A Brief History of Humankind",
			Author:      "Yuval Noah Harari",
			Price:       decimal.NewFromFloat(14.99),
			Discount:    decimal.NewFromFloat(0.25),
			Genre:       "Non-Fiction",
			Description: "How an unremarkable ape came to rule the planet.",
			CoverImage:  "/covers/sapiens.jpg",
			Format:      domain.FormatPDF,
			Rating:      4.4,
			Pages:       443,
			Language:    "English",
			ReleaseDate: "2011-06-04",
		},
		{
			ID:          "book-neuromancer",
			Title:       "Neuromancer",
			Author:      "William Gibson",
			Price:       decimal.NewFromFloat(11.49),
			Discount:    decimal.Zero,
			Genre:       "Science Fiction",
			Description: "A washed-up console cowboy gets one last run in the matrix.",
			CoverImage:  "/covers/neuromancer.jpg",
			Format:      domain.FormatMOBI,
			Rating:      4.1,
			Pages:       271,
			Language:    "English",
			ReleaseDate: "1984-07-01",
		},
		{
			ID:          "book-norwegian-wood",
			Title:       "Norwegian Wood",
			Author:      "Haruki Murakami",
			Price:       decimal.NewFromFloat(9.99),
			Discount:    decimal.NewFromFloat(0.05),
			Genre:       "Literary Fiction",
			Description: "Toru Watanabe remembers Tokyo, the sixties, and two very different women.",
			CoverImage:  "/covers/norwegian-wood.jpg",
			Format:      domain.FormatEPUB,
			Rating:      4.0,
			Pages:       296,
			Language:    "English",
			ReleaseDate: "1987-09-04",
		},
	}
}
