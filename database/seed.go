package database

import (
	"cybercourse/models"
	"log"

	"gorm.io/gorm"
)

// catalog is the static course list. Courses are never created or edited
// at runtime; changing the lineup means changing this table and restarting
// (or running scripts/importcatalog against a JSON file).
var catalog = []models.Course{
	{
		Name:        "Ethical Hacking Bootcamp",
		Price:       1999,
		Description: "Recon, exploitation and reporting on deliberately vulnerable labs. Kali, Burp and Metasploit from zero.",
		Image:       "/images/ethical-hacking.jpg",
		Category:    "Cybersecurity",
		Level:       "Intermediate",
		Duration:    "12 weeks",
		Instructor:  "Rohit Verma",
		DriveLink:   "https://drive.google.com/drive/folders/ethical-hacking-bootcamp",
	},
	{
		Name:        "Python for Automation",
		Price:       999,
		Description: "Scripting, scraping and task automation with Python. No prior programming experience needed.",
		Image:       "/images/python-automation.jpg",
		Category:    "Programming",
		Level:       "Beginner",
		Duration:    "6 weeks",
		Instructor:  "Ananya Iyer",
		DriveLink:   "https://drive.google.com/drive/folders/python-automation",
	},
	{
		Name:        "Advanced Python for Data Pipelines",
		Price:       2499,
		Description: "Generators, asyncio and packaging for production-grade Python data tooling.",
		Image:       "/images/advanced-python.jpg",
		Category:    "Programming",
		Level:       "Advanced",
		Duration:    "8 weeks",
		Instructor:  "Ananya Iyer",
		DriveLink:   "https://drive.google.com/drive/folders/advanced-python",
	},
	{
		Name:        "Machine Learning Foundations",
		Price:       2999,
		Description: "Regression to neural networks with scikit-learn and PyTorch, driven by real datasets.",
		Image:       "/images/ml-foundations.jpg",
		Category:    "AI & ML",
		Level:       "Intermediate",
		Duration:    "10 weeks",
		Instructor:  "Dr. Kavya Nair",
		DriveLink:   "https://drive.google.com/drive/folders/ml-foundations",
	},
	{
		Name:        "Full-Stack Web Development",
		Price:       1799,
		Description: "React, Node and Postgres, shipped to production. Build and deploy three complete applications.",
		Image:       "/images/fullstack-web.jpg",
		Category:    "Web Development",
		Level:       "Beginner",
		Duration:    "14 weeks",
		Instructor:  "Siddharth Rao",
		DriveLink:   "https://drive.google.com/drive/folders/fullstack-web",
	},
	{
		Name:        "Smart Contract Security",
		Price:       3499,
		Description: "Auditing Solidity contracts: reentrancy, oracle manipulation and the exploits that made headlines.",
		Image:       "/images/smart-contracts.jpg",
		Category:    "Blockchain",
		Level:       "Expert",
		Duration:    "8 weeks",
		Instructor:  "Meera Joshi",
		DriveLink:   "https://drive.google.com/drive/folders/smart-contract-security",
	},
	{
		Name:        "Network Defense and Blue Teaming",
		Price:       2199,
		Description: "SIEM, packet analysis and incident response for defenders. Wireshark and Suricata hands-on.",
		Image:       "/images/blue-team.jpg",
		Category:    "Cybersecurity",
		Level:       "Intermediate",
		Duration:    "9 weeks",
		Instructor:  "Rohit Verma",
		DriveLink:   "https://drive.google.com/drive/folders/network-defense",
	},
	{
		Name:        "Prompt Engineering for Developers",
		Price:       799,
		Description: "Working with LLM APIs: structured outputs, evaluation and retrieval-augmented generation.",
		Image:       "/images/prompt-engineering.jpg",
		Category:    "AI & ML",
		Level:       "Beginner",
		Duration:    "4 weeks",
		Instructor:  "Dr. Kavya Nair",
		DriveLink:   "https://drive.google.com/drive/folders/prompt-engineering",
	},
}

// SeedCatalog loads the static catalog once into an empty courses table.
func SeedCatalog(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("Error seeding course catalog: %v", err)
		return
	}
	log.Printf("Seeded course catalog with %d courses.", len(catalog))
}
